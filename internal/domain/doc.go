// Package domain contains the core entities of the name-meaning flow: the
// language a meaning is requested in, the phases of a reveal session, and the
// session itself. It is independent of any provider or delivery mechanism.
package domain
