// Package ffprobe shells out to ffprobe to read audio metadata. The build
// pipeline uses the episode audio duration to sanity-check the synthesized
// caption timeline.
package ffprobe
