// Package textutil provides text normalization and similarity helpers shared
// by the caption loader, the speaker attribution resolver, and the subtitle
// serializers.
package textutil
