// Command subcast turns generated podcast scripts into subtitle files. The
// build command synthesizes caption timing from an episode timeline; the
// colorize command assigns speakers to existing captions by aligning them
// with the episode transcript.
package main
