// Package subtitles turns a timed utterance sequence into subtitle documents.
//
// It splits over-long utterances into sub-captions with proportionally
// apportioned durations, wraps caption text into bounded display lines, and
// renders one internal cue list into two wire formats: plain SRT and styled
// ASS with per-speaker colours.
package subtitles
