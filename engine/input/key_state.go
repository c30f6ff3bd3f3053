// Package input turns key events from the window thread into per-tick snapshots
// for the locomotion controller.
package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-garden/common"
	"github.com/Carmen-Shannon/oxy-garden/engine/locomotion"
)

// KeyState tracks which direction keys are held and how many times a run modifier
// was pressed. KeyDown and KeyUp are called from the window thread; Snapshot and
// DrainRunToggles from the tick goroutine.
type KeyState struct {
	mu      sync.Mutex
	held    locomotion.KeySet
	toggles int
}

// NewKeyState returns a KeyState with nothing held.
func NewKeyState() *KeyState {
	return &KeyState{}
}

// KeyDown records a key press. Keys other than W, A, S, D and the shift keys are ignored.
//
// Parameters:
//   - code: a GLFW key code or lowercase ASCII letter
func (k *KeyState) KeyDown(code uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if isRunModifier(code) {
		k.toggles++
		return
	}
	k.set(code, true)
}

// KeyUp records a key release.
//
// Parameters:
//   - code: a GLFW key code or lowercase ASCII letter
func (k *KeyState) KeyUp(code uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.set(code, false)
}

// Snapshot returns a copy of the held direction keys.
func (k *KeyState) Snapshot() locomotion.KeySet {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held
}

// Hold replaces the held direction keys, for scripted input.
func (k *KeyState) Hold(keys locomotion.KeySet) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held = keys
}

// ToggleRun queues one run mode toggle, as a modifier press would.
func (k *KeyState) ToggleRun() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.toggles++
}

// DrainRunToggles returns the number of run modifier presses since the last call and
// resets the count.
func (k *KeyState) DrainRunToggles() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	n := k.toggles
	k.toggles = 0
	return n
}

// Reset releases every key and discards pending toggles, e.g. when the window loses focus.
func (k *KeyState) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held = locomotion.KeySet{}
	k.toggles = 0
}

// set must be called with mu held.
func (k *KeyState) set(code uint32, down bool) {
	switch code {
	case common.KeyW, common.KeyLowerW:
		k.held.Forward = down
	case common.KeyA, common.KeyLowerA:
		k.held.Left = down
	case common.KeyS, common.KeyLowerS:
		k.held.Back = down
	case common.KeyD, common.KeyLowerD:
		k.held.Right = down
	}
}

func isRunModifier(code uint32) bool {
	return code == common.KeyLeftShift || code == common.KeyRightShift
}

// ParseKeys converts a string of w, a, s and d characters into a KeySet.
// Other characters are ignored and case does not matter.
//
// Parameters:
//   - keys: e.g. "wa" for forward and left
//
// Returns:
//   - locomotion.KeySet: the held keys
func ParseKeys(keys string) locomotion.KeySet {
	k := NewKeyState()
	for _, r := range keys {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		k.set(uint32(r), true)
	}
	return k.held
}
