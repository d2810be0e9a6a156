// Package pipeline sequences one run end to end: resolve the input source,
// optionally extract archives from a located installation, organize the
// output tree, and clean up temporary state. The three fatal conditions
// (no input source, auto-detect without rpf-cli, installation not found)
// abort the run; everything else degrades to per-item warnings.
package pipeline
