package pipeline

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Trace", func() {
	It("keeps lines in append order", func() {
		t := NewTrace()
		t.Add("first")
		t.Add("second %d", 2)
		Expect(t.Lines()).To(Equal([]string{"first", "second 2"}))
		Expect(t.Len()).To(Equal(2))
	})

	It("hands out copies", func() {
		t := NewTrace()
		t.Add("only")
		lines := t.Lines()
		lines[0] = "mutated"
		Expect(t.Lines()).To(Equal([]string{"only"}))
	})

	It("is independent per session", func() {
		a, b := newSession("a.pdf"), newSession("b.pdf")
		a.Trace.Add("a line")
		Expect(b.Trace.Len()).To(BeZero())
		Expect(a.ID).NotTo(Equal(b.ID))
	})
})
