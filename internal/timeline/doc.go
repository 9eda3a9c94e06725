// Package timeline defines the utterance model shared by the subtitle
// pipeline and repairs incomplete timelines.
//
// The loader accepts timed caption streams, speaker-tagged transcripts, and
// timeline JSON, normalizing raw speaker labels to the closed role set. The
// synthesizer derives start/end values from text statistics for utterances
// that arrive without measured timing.
package timeline
