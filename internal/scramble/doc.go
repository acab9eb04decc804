// Package scramble implements the text "decode" effect: a target string is
// shown as random symbols that resolve left to right into the real text,
// one position every CyclesPerLetter ticks.
//
// An Effect owns at most one pending timer. Starting a new run cancels the
// previous one, Stop reverts to the target immediately, and Close releases
// everything. Each tick publishes a Frame to subscribers; hosts turn those
// frames into re-renders.
//
//	e := scramble.New("Selected Works")
//	unsubscribe := e.Subscribe(func(f scramble.Frame) { fmt.Println(f.Text) })
//	defer unsubscribe()
//	e.Activate()
package scramble
