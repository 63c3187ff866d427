package fasta

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Canceling after the first record stops the reader well before the end of
// the file and reports the cancellation on the error channel.
func TestStreamCtx_CancelMidFile(t *testing.T) {
	const total = 2000
	var b strings.Builder
	for i := 0; i < total; i++ {
		fmt.Fprintf(&b, ">r%d\na*ulb\n", i)
	}
	fn := filepath.Join(t.TempDir(), "many.fa")
	if err := os.WriteFile(fn, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	recs, errc, err := StreamCtx(ctx, fn)
	if err != nil {
		t.Fatalf("StreamCtx: %v", err)
	}
	first, ok := <-recs
	if !ok || first.ID != "r0" || string(first.Seq) != "a*ulb" {
		t.Fatalf("first record %+v ok=%v", first, ok)
	}
	cancel()
	n := 1
	for range recs {
		n++
	}
	if n >= total {
		t.Fatalf("read all %d records after cancel", n)
	}
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
