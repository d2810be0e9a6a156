// Package organizer builds the GTRadio output tree: one group directory
// with its metadata file, and per station a display-named directory whose
// Songs folder receives the converted audio.
package organizer
