package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
)

// promptToken reads an access token from the terminal without echo. The token
// is held in memory only.
func promptToken(in *os.File, out io.Writer) (string, error) {
	fd := int(in.Fd()) //nolint:gosec // file descriptors fit in int

	if !term.IsTerminal(fd) {
		return "", constants.ErrTokenPromptNoTTY
	}

	fmt.Fprint(out, "Access token: ")

	tokenBytes, err := term.ReadPassword(fd)

	fmt.Fprintln(out)

	if err != nil {
		return "", fmt.Errorf("reading access token: %w", err)
	}

	return strings.TrimSpace(string(tokenBytes)), nil
}
