// Package vgmstream shells out to the vgmstream-cli executable to turn
// AWC audio containers into playable WAV files.
package vgmstream
