package bf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/modes"
)

func TestModule(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() bfconfigs.TapeSize {
			return 4
		},
		func() bfconfigs.EOFValue {
			return '?'
		},
	).Call(func(
		newEngine NewEngine,
	) {
		out := new(bytes.Buffer)
		engine := newEngine(Load(",.>>>+."), strings.NewReader(""), out)
		if engine.TapeSize() != 4 {
			t.Fatalf("got %d", engine.TapeSize())
		}
		if err := engine.Run(); err != nil {
			t.Fatal(err)
		}
		if out.String() != "?\x01" {
			t.Fatalf("got %q", out.String())
		}
	})
}

func TestModuleDefaults(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		newEngine NewEngine,
	) {
		engine := newEngine(Load(""), strings.NewReader(""), new(bytes.Buffer))
		if engine.TapeSize() != DefaultTapeSize {
			t.Fatalf("got %d", engine.TapeSize())
		}
		if engine.eof != 0 {
			t.Fatalf("got %d", engine.eof)
		}
	})
}
