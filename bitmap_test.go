package textbitmap_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/textbitmap"
)

func mustGrid(rows [][]uint8) *textbitmap.IntensityGrid {
	grid, err := textbitmap.GridFromRows(rows)
	Expect(err).NotTo(HaveOccurred())
	return grid
}

func cells(b textbitmap.Bitmap) [][]byte {
	rows, cols := b.Dims()
	out := make([][]byte, rows)
	for r := range out {
		out[r] = make([]byte, cols)
		b.Row(r, out[r])
	}
	return out
}

var _ = Describe("GridFromRows", func() {
	It("keeps the shape and the samples", func() {
		grid := mustGrid([][]uint8{{1, 2, 3}, {4, 5, 6}})
		Expect(grid.Rows()).To(Equal(2))
		Expect(grid.Cols()).To(Equal(3))
		Expect(grid.At(1, 2)).To(Equal(uint8(6)))
	})

	It("copies its input", func() {
		rows := [][]uint8{{7}}
		grid := mustGrid(rows)
		rows[0][0] = 8
		Expect(grid.At(0, 0)).To(Equal(uint8(7)))
	})

	DescribeTable("rejects empty and ragged grids",
		func(rows [][]uint8) {
			_, err := textbitmap.GridFromRows(rows)
			Expect(err).To(MatchError(textbitmap.ErrEmptyInput))
		},
		Entry("nil", [][]uint8(nil)),
		Entry("no rows", [][]uint8{}),
		Entry("no columns", [][]uint8{{}, {}}),
		Entry("ragged", [][]uint8{{1, 2}, {3}}),
	)
})

var _ = Describe("Threshold", func() {
	DescribeTable("compares strictly",
		func(v uint8, threshold int, want byte) {
			b, err := textbitmap.Threshold(mustGrid([][]uint8{{v}}), threshold)
			Expect(err).NotTo(HaveOccurred())
			Expect(cells(b)).To(Equal([][]byte{{want}}))
		},
		Entry("equal to the threshold is 0", uint8(128), 128, byte(0)),
		Entry("one above is 1", uint8(129), 128, byte(1)),
		Entry("one below is 0", uint8(127), 128, byte(0)),
		Entry("zero against a negative threshold", uint8(0), -1, byte(1)),
		Entry("white against 255", uint8(255), 255, byte(0)),
		Entry("white against an out of range threshold", uint8(255), 1000, byte(0)),
	)

	It("preserves the grid's shape", func() {
		grid := mustGrid([][]uint8{
			{0, 50, 100, 150, 200},
			{250, 200, 150, 100, 50},
			{128, 129, 130, 127, 126},
		})
		b, err := textbitmap.Threshold(grid, textbitmap.DefaultThreshold)
		Expect(err).NotTo(HaveOccurred())

		rows, cols := b.Dims()
		Expect(rows).To(Equal(3))
		Expect(cols).To(Equal(5))
		Expect(cells(b)).To(Equal([][]byte{
			{0, 0, 0, 1, 1},
			{1, 1, 1, 0, 0},
			{0, 1, 1, 0, 0},
		}))
	})

	It("rejects a nil grid", func() {
		_, err := textbitmap.Threshold(nil, textbitmap.DefaultThreshold)
		Expect(err).To(MatchError(textbitmap.ErrEmptyInput))
	})
})

var _ = Describe("Constant", func() {
	It("fills rows by cols cells with ones", func() {
		b, err := textbitmap.Constant(3, 5, 1)
		Expect(err).NotTo(HaveOccurred())

		rows, cols := b.Dims()
		Expect(rows).To(Equal(3))
		Expect(cols).To(Equal(5))
		for _, row := range cells(b) {
			Expect(row).To(Equal([]byte{1, 1, 1, 1, 1}))
		}
	})

	It("fills with zeros", func() {
		b, err := textbitmap.Constant(1, 2, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(cells(b)).To(Equal([][]byte{{0, 0}}))
	})

	DescribeTable("rejects non-positive extents",
		func(rows, cols int) {
			_, err := textbitmap.Constant(rows, cols, 1)
			Expect(err).To(MatchError(textbitmap.ErrInvalidDimension))
		},
		Entry("zero rows", 0, 5),
		Entry("zero cols", 5, 0),
		Entry("negative rows", -1, 5),
		Entry("negative cols", 5, -3),
	)

	It("rejects fill values other than 0 and 1", func() {
		_, err := textbitmap.Constant(1, 1, 2)
		Expect(err).To(MatchError(textbitmap.ErrInvalidFill))
	})
})

var _ = Describe("Invert", func() {
	It("flips every cell", func() {
		b, err := textbitmap.Threshold(mustGrid([][]uint8{{200, 50}, {128, 129}}), 128)
		Expect(err).NotTo(HaveOccurred())
		Expect(cells(textbitmap.Invert(b))).To(Equal([][]byte{{0, 1}, {1, 0}}))
	})

	It("undoes itself", func() {
		b, err := textbitmap.Constant(2, 2, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(textbitmap.Invert(textbitmap.Invert(b))).To(BeIdenticalTo(b))
	})
})
