// Package filtering implements the restaurant card filter controller.
//
// A Controller is built once per document. It reads the checkbox groups, the
// search input and the sort select, hides every card that fails an active
// filter, reorders the visible cards inside the list container and writes the
// visible count:
//
//	ctrl, err := filtering.NewController(doc, cfg)
//	if err != nil {
//	    return err
//	}
//	defer ctrl.Close()
//
//	_ = ctrl.SetChecked("price", "2", true)   // change event, recomputes now
//	ctrl.Input("sushi")                        // input event, recomputes after the debounce
//
// Filter order:
//
// Price, features, senior-friendliness and search are evaluated in that order
// and evaluation stops at the first rejection. Within price a card matches any
// selected tier; within features it must carry every selected tag.
//
// Senior-friendliness:
//
// Only "wheelchair" restricts cards. "parking" computes a match and never
// applies it, "quiet" and "seating" have no data behind them yet.
package filtering
