// Package enhance generates the image variants fed to the recognition engine.
//
// GPS-tagging camera apps burn their overlay into the bottom-right corner of
// the frame, so every variant is a crop of that region combined with an
// enhancement recipe: an ordered list of contrast, brightness, sharpness,
// blur, inversion, grayscale, and edge-detection operations with a numeric
// intensity each. Recipes escalate from a gentle standard pass to extreme
// settings that sacrifice the photograph to make faint overlay glyphs legible.
//
// All operations are pure pixel-buffer transforms built on
// github.com/anthonynsimon/bild and github.com/disintegration/imaging; nothing
// in this package performs I/O.
package enhance
