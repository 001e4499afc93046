package utils

import (
	"regexp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GeneratePassword", func() {
	It("returns a string of the requested length", func() {
		p, err := GeneratePassword(64)
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(HaveLen(64))
	})

	It("is strictly alphanumeric", func() {
		p, err := GeneratePassword(128)
		Expect(err).NotTo(HaveOccurred())
		Expect(regexp.MustCompile(`^[A-Za-z0-9]+$`).MatchString(p)).To(BeTrue())
	})

	It("produces distinct values across calls", func() {
		p1, _ := GeneratePassword(32)
		p2, _ := GeneratePassword(32)
		Expect(p1).NotTo(Equal(p2))
	})
})
