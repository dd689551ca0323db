package textbitmap

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("otsu", func() {
	It("handles photo sized histograms", func() {
		var histo [256]int
		histo[20] = 18000000
		histo[240] = 18000000
		Expect(otsu(histo)).To(Equal(20))
	})

	It("handles histograms beyond int64 variance", func() {
		var histo [256]int
		histo[0] = 1 << 40
		histo[255] = 1 << 40
		Expect(otsu(histo)).To(Equal(0))

		histo[0], histo[1] = 0, 1<<40
		Expect(otsu(histo)).To(Equal(1))
	})
})
