// Package rpfcli shells out to the rpf-cli executable to unpack RPF
// archives. The tool's own output is suppressed; success is judged by
// exit status alone.
package rpfcli
