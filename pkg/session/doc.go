// Package session drives one editable field through its edit cycle.
//
// A host widget owns an Editor and calls it at four points per interaction:
// Begin (may refuse), Change for every keystroke, ShouldEnd (may refuse unless
// the text is empty) and End. Return handles the submit key. Change always
// leaves the host's own text editing switched off: the editor writes the final
// text itself through Host.SetText.
//
// Each successful Begin opens a Session that lives until End (or Close). A
// Registry shared by the editors of one screen tracks the session currently
// editing so keyboard geometry notifications reach the right field.
//
// Editors and sessions are not safe for concurrent use; drive them from the
// host's event loop.
package session
