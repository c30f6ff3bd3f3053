// Package locomotion drives a third-person avatar from directional key input.
//
// Each tick the Controller picks an animation state from the held keys and the run
// toggle, cross-fades clips on state changes, turns the avatar toward the
// camera-relative travel direction, moves it across the ground plane and drags the
// follow camera along by the same displacement.
//
// The Controller is owned by a single goroutine and holds no locks. Collaborators
// are supplied as small interfaces so the engine types, or test doubles, can stand
// in for them.
package locomotion
