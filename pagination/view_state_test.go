package pagination_test

import (
	"github.com/lightlink-network/dai-tracker/pagination"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ViewState", func() {
	var state pagination.ViewState

	BeforeEach(func() {
		state = pagination.NewViewState()
	})

	It("starts on the first page with the default size", func() {
		Expect(state.Page).To(Equal(0))
		Expect(state.RowsPerPage).To(Equal(pagination.DefaultRowsPerPage))
	})

	It("resets the page whenever the page size changes", func() {
		for _, r := range []int{5, 10, 25, 7, 0, -1} {
			state.SetPage(3)
			state.SetRowsPerPage(r)
			Expect(state.Page).To(Equal(0), "rowsPerPage=%d", r)
		}
	})

	It("rejects sizes outside the allowed set", func() {
		state.SetRowsPerPage(25)
		Expect(state.RowsPerPage).To(Equal(25))
		state.SetRowsPerPage(7)
		Expect(state.RowsPerPage).To(Equal(pagination.DefaultRowsPerPage))
	})

	It("never goes below page 0", func() {
		state.SetPage(-4)
		Expect(state.Page).To(Equal(0))
	})

	When("the page points past the end", func() {
		It("clamps to the last page", func() {
			state.SetPage(9)
			state.Clamp(23)
			Expect(state.Page).To(Equal(2))
			start, end := state.Window(23)
			Expect(end - start).To(Equal(3))
			Expect(state.EmptyRows(23)).To(Equal(7))
			Expect(state.Controls(23).Next.Disabled).To(BeTrue())
			Expect(state.DisplayedRows(23)).To(Equal("21-23 of 23"))
		})

		It("clamps a page index whose offset does not fit in an int", func() {
			state.SetPage(1 << 62)
			state.Clamp(23)
			Expect(state.Page).To(Equal(2))
			Expect(state.EmptyRows(23)).To(Equal(7))
		})

		It("clamps to page 0 for an empty list", func() {
			state.SetPage(2)
			state.Clamp(0)
			Expect(state.Page).To(Equal(0))
		})
	})

	It("leaves an in-range page alone", func() {
		state.SetPage(1)
		state.Clamp(23)
		Expect(state.Page).To(Equal(1))
	})
})
