package converters

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// graphvizBinary is the executable RenderPNG invokes.
const graphvizBinary = "dot"

// RenderPNG converts the DOT file at dotPath into a PNG next to it
// (same name, ".png" extension) by running `dot -Tpng`. The process is
// killed when ctx ends.
//
// Errors: ErrRendererMissing when Graphviz is not installed; otherwise the
// process error with its stderr attached.
func RenderPNG(ctx context.Context, dotPath string) (string, error) {
	bin, err := exec.LookPath(graphvizBinary)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrRendererMissing)
	}
	pngPath := strings.TrimSuffix(dotPath, ".dot") + ".png"

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "-Tpng", dotPath, "-o", pngPath)
	cmd.Stderr = &stderr
	if err = cmd.Run(); err != nil {
		return "", fmt.Errorf("render %s: %w: %s", dotPath, err, strings.TrimSpace(stderr.String()))
	}

	return pngPath, nil
}
