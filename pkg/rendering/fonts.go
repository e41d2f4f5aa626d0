package rendering

import "golang.org/x/image/font/gofont/goregular"

// defaultFontData returns the bundled Go Regular TrueType data.
func defaultFontData() []byte { return goregular.TTF }
