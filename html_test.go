package justify_test

import (
	. "github.com/mudler/justify"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FormatHTML", func() {
	var j *Justifier

	BeforeEach(func() {
		j = New(
			WithLineSeparator("\n"),
			WithParagraphSeparator("\n\n"),
		)
	})

	It("should strip markup before justifying", func() {
		out, err := j.FormatHTML("<p>aa bb cc dd eeeee</p>", 13, 3)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("aa  bb  cc dd\neeeee        "))
	})

	It("should keep block elements as separate paragraphs", func() {
		out, err := j.FormatHTML("<p>first paragraph</p><p>second paragraph</p>", 32, 3)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("first paragraph\n\nsecond paragraph"))
	})

	It("should pass plain text through", func() {
		out, err := j.FormatHTML("just plain words", 32, 3)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("just plain words"))
	})

	It("should tolerate malformed markup", func() {
		out, err := j.FormatHTML("<p>unclosed paragraph", 32, 3)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("unclosed paragraph"))
	})
})
