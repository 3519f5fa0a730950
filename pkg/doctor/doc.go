// Package doctor is the small framework diagnoses plug into.
//
// A Diagnosis examines one aspect of a workspace and returns a Result. An
// Examination tracks a single run of a diagnosis through its states, and a
// Runner examines a list of diagnoses and collects a Report for rendering.
package doctor
