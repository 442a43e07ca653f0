// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package help_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/holomush/helpmenu/pkg/help"
)

var _ = Describe("Browsing the bundled help file", func() {
	var (
		ctx    context.Context
		mgr    *help.Manager
		sender *recordingSender
	)

	BeforeEach(func() {
		ctx = context.Background()
		mgr = help.NewManager("myplugin", help.BytesSource(help.DefaultConfig))
		Expect(mgr.Reload(ctx)).To(Succeed())
		sender = &recordingSender{grants: grants{}}
	})

	send := func(args ...string) []string {
		mgr.Handle(ctx, sender, help.Request{
			Label:   "myplugin",
			Command: "help",
			Args:    append([]string{"help"}, args...),
		})
		Expect(sender.calls).NotTo(BeEmpty())
		return sender.calls[len(sender.calls)-1]
	}

	Describe("the home section", func() {
		It("greets the player and lists every child section", func() {
			lines := send()
			Expect(lines).To(ContainElement("§7Welcome to §6myplugin§7."))
			Expect(lines).To(ContainElement(ContainSubstring("§6admin")))
			Expect(lines).To(ContainElement(ContainSubstring("§6commands §8- §6Everyday commands")))
		})

		It("fills the command placeholder with the typed words", func() {
			lines := send()
			Expect(lines).To(ContainElement("§7Use §6/myplugin help <section>§7 to open a section."))
		})
	})

	Describe("a public section", func() {
		It("renders its messages with the section path in the title", func() {
			lines := send("commands")
			Expect(lines[1]).To(HavePrefix("§7commands §8(§71§8/§71§8)"))
			Expect(lines).To(ContainElement("§6/myplugin info §7- show plugin information"))
		})

		It("reports pages past the end", func() {
			lines := send("commands", "2")
			Expect(lines).To(ContainElement("§c§oNothing here."))
		})
	})

	Describe("a guarded section", func() {
		It("shows the permission message to players without the grant", func() {
			Expect(send("admin")).To(Equal([]string{"§cOnly administrators can read this section."}))
		})

		It("renders normally once the grant is present", func() {
			sender.grants["myplugin.help.admin"] = true
			lines := send("admin")
			Expect(lines).To(ContainElement("§6/myplugin reload §7- reload every configuration file"))
		})
	})

	Describe("an unknown section", func() {
		It("names the attempted path", func() {
			Expect(send("nope", "deeper")).To(Equal([]string{"§cUnknown help section: §4nope.deeper§c."}))
		})
	})
})
