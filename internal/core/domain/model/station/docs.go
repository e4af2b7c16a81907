// Package station implements the kitchen station registry aggregate.
//
// A Station is a physical or logical preparation point (grill, fry, cold, bar)
// that receives tickets. Stations carry capability tags consumed by tag-based
// routing rules and a sort order used by KDS screens. Deactivated stations are
// retained for history but no longer accept tickets; the application layer
// guards deactivation against routing rules that still target the station.
package station
