package stegmerge_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/bodgit/stegmerge"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	notFound := &os.PathError{Op: "open", Path: "in.png", Err: os.ErrNotExist}

	tables := []struct {
		err  error
		kind stegmerge.Kind
	}{
		{fmt.Errorf("%w: 300x300 does not fit in 200x200", stegmerge.ErrDimensionMismatch), stegmerge.KindValue},
		{stegmerge.ErrUnsupportedColorMode, stegmerge.KindValue},
		{stegmerge.ErrUnsupportedFormat, stegmerge.KindValue},
		{notFound, stegmerge.KindFileNotFound},
		{&os.PathError{Op: "open", Path: "out.png", Err: os.ErrPermission}, stegmerge.KindUnexpected},
		{errors.New("boom"), stegmerge.KindUnexpected},
	}

	for _, table := range tables {
		assert.Equal(t, table.kind, stegmerge.KindOf(table.err), "%v", table.err)
	}

	path, ok := stegmerge.MissingPath(notFound)
	assert.True(t, ok)
	assert.Equal(t, "in.png", path)

	_, ok = stegmerge.MissingPath(stegmerge.ErrUnsupportedFormat)
	assert.False(t, ok)

	assert.Equal(t, "file not found", stegmerge.KindFileNotFound.String())
}
