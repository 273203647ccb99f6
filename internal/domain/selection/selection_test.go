package selection_test

import (
	"fmt"
	"testing"

	"github.com/sharzhou/headcount/internal/domain/model"
	"github.com/sharzhou/headcount/internal/domain/selection"
	. "github.com/smartystreets/goconvey/convey"
)

func testRoster() model.Roster {
	return model.Roster{
		{ID: "E1", Name: "A", CompUSD: 90000},
		{ID: "E2", Name: "B", CompUSD: 50000},
		{ID: "E3", Name: "C", CompUSD: 70000},
		{ID: "E4", Name: "D", CompUSD: 60000},
		{ID: "E5", Name: "E", CompUSD: 80000},
	}
}

func TestSelect(t *testing.T) {
	Convey("Given a five-employee roster", t, func() {
		roster := testRoster()

		Convey("When selecting the three cheapest", func() {
			sel := selection.Select(roster, 3, selection.LowestFirst)

			Convey("Then it returns the lowest compensations in ascending order", func() {
				So(len(sel), ShouldEqual, 3)
				So(sel[0].CompUSD, ShouldEqual, 50000)
				So(sel[1].CompUSD, ShouldEqual, 60000)
				So(sel[2].CompUSD, ShouldEqual, 70000)
			})

			Convey("And the roster itself is untouched", func() {
				So(roster[0].ID, ShouldEqual, "E1")
				So(roster[0].CompUSD, ShouldEqual, 90000)
			})
		})

		Convey("When selecting the three most expensive", func() {
			sel := selection.Select(roster, 3, selection.HighestFirst)

			Convey("Then it returns the highest compensations in descending order", func() {
				So(sel[0].CompUSD, ShouldEqual, 90000)
				So(sel[1].CompUSD, ShouldEqual, 80000)
				So(sel[2].CompUSD, ShouldEqual, 70000)
			})
		})

		Convey("When the target is zero", func() {
			Convey("Then both directions yield an empty selection", func() {
				So(len(selection.Select(roster, 0, selection.LowestFirst)), ShouldEqual, 0)
				So(len(selection.Select(roster, 0, selection.HighestFirst)), ShouldEqual, 0)
			})
		})

		Convey("When the target exceeds the roster size", func() {
			sel := selection.Select(roster, 99, selection.LowestFirst)

			Convey("Then it clamps to the full roster", func() {
				So(len(sel), ShouldEqual, len(roster))
			})
		})

		Convey("When the target is negative", func() {
			Convey("Then it clamps to empty", func() {
				So(len(selection.Select(roster, -3, selection.HighestFirst)), ShouldEqual, 0)
			})
		})

		Convey("When checking the size law across targets", func() {
			for _, n := range []int{0, 1, 2, 5, 6, 100} {
				n := n
				Convey(fmt.Sprintf("Then len(select(roster, %d)) == min(%d, 5)", n, n), func() {
					want := n
					if want > len(roster) {
						want = len(roster)
					}
					So(len(selection.Select(roster, n, selection.LowestFirst)), ShouldEqual, want)
				})
			}
		})
	})

	Convey("Given a roster with tied compensations", t, func() {
		roster := model.Roster{
			{ID: "E1", CompUSD: 60000},
			{ID: "E2", CompUSD: 50000},
			{ID: "E3", CompUSD: 60000},
			{ID: "E4", CompUSD: 60000},
			{ID: "E5", CompUSD: 70000},
		}

		Convey("When sorting ascending", func() {
			sel := selection.Select(roster, 5, selection.LowestFirst)

			Convey("Then tied rows keep their roster order", func() {
				So(sel[1].ID, ShouldEqual, "E1")
				So(sel[2].ID, ShouldEqual, "E3")
				So(sel[3].ID, ShouldEqual, "E4")
			})
		})

		Convey("When sorting descending", func() {
			sel := selection.Select(roster, 5, selection.HighestFirst)

			Convey("Then tied rows still keep their roster order", func() {
				So(sel[1].ID, ShouldEqual, "E1")
				So(sel[2].ID, ShouldEqual, "E3")
				So(sel[3].ID, ShouldEqual, "E4")
			})
		})
	})

	Convey("Given an empty roster", t, func() {
		Convey("When selecting anything", func() {
			Convey("Then the selection is empty and nothing panics", func() {
				So(len(selection.Select(nil, 10, selection.LowestFirst)), ShouldEqual, 0)
			})
		})
	})
}

func TestParseOrder(t *testing.T) {
	Convey("Given order inputs", t, func() {
		Convey("When parsing the supported spellings", func() {
			cases := map[string]selection.Order{
				"asc":    selection.LowestFirst,
				"ASC":    selection.LowestFirst,
				"desc":   selection.HighestFirst,
				" desc ": selection.HighestFirst,
				"":       selection.LowestFirst,
			}
			for in, want := range cases {
				got, ok := selection.ParseOrder(in)
				So(ok, ShouldBeTrue)
				So(got, ShouldEqual, want)
			}
		})

		Convey("When parsing garbage", func() {
			_, ok := selection.ParseOrder("sideways")

			Convey("Then it is rejected", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})
}
