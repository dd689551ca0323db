package textbitmap_test

import (
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/textbitmap"
)

var _ = Describe("Check", func() {
	DescribeTable("accepts consistent documents",
		func(doc string, want textbitmap.Header) {
			h, err := textbitmap.Check(strings.NewReader(doc))
			Expect(err).NotTo(HaveOccurred())
			Expect(h).To(Equal(want))
		},
		Entry("without a final line feed", "2 2\n1 0\n0 1", textbitmap.Header{Rows: 2, Cols: 2}),
		Entry("with a final line feed", "2 2\n1 0\n0 1\n", textbitmap.Header{Rows: 2, Cols: 2}),
		Entry("a single cell", "1 1\n1", textbitmap.Header{Rows: 1, Cols: 1}),
		Entry("no rows", "0 3", textbitmap.Header{Rows: 0, Cols: 3}),
		Entry("a wide header separator", "1  2\n0 1", textbitmap.Header{Rows: 1, Cols: 2}),
	)

	DescribeTable("rejects inconsistent documents",
		func(doc string, line string) {
			_, err := textbitmap.Check(strings.NewReader(doc))
			Expect(err).To(MatchError(textbitmap.ErrMalformed))
			Expect(err.Error()).To(HavePrefix(line + ":"))
		},
		Entry("empty", "", "line 1"),
		Entry("one header field", "2\n1 0", "line 1"),
		Entry("non-numeric header", "2 x\n1 0", "line 1"),
		Entry("negative header", "-1 2", "line 1"),
		Entry("too few rows", "3 2\n1 0\n0 1", "line 4"),
		Entry("too many rows", "1 2\n1 0\n0 1", "line 3"),
		Entry("short row", "2 3\n1 0 1\n0 1", "line 3"),
		Entry("long row", "1 2\n1 0 1", "line 2"),
		Entry("foreign digit", "1 3\n1 2 1", "line 2"),
		Entry("double space", "1 2\n1  0", "line 2"),
		Entry("trailing space", "1 2\n1 0 ", "line 2"),
		Entry("blank line after the rows", "1 2\n1 0\n\n", "line 3"),
		Entry("carriage returns", "1 2\r\n1 0\r\n", "line 2"),
	)
})
