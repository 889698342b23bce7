// Package runnertest builds in-memory services for runner tests.
package runnertest

import (
	"bytes"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodbubbles/pkg/app"
	"tableflip.dev/moodbubbles/pkg/journal"
	"tableflip.dev/moodbubbles/pkg/logging"
	"tableflip.dev/moodbubbles/pkg/printers"
	"tableflip.dev/moodbubbles/pkg/store"
)

// Now is the fixed clock used by runner tests.
var Now = time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)

// Service returns a service over an in-memory medium seeded with seed, and a
// printer that writes uncolored text into the returned buffer.
func Service(seed map[string]string) (*app.Service, *store.Memory, *printers.PrettyPrint, *bytes.Buffer) {
	color.NoColor = true
	m := store.NewMemory(seed)
	svc := &app.Service{
		Records: journal.New(m, journal.WithLogger(logging.Discard())),
		Now:     func() time.Time { return Now },
		IntN:    func(int) int { return 0 },
	}
	buf := &bytes.Buffer{}
	return svc, m, &printers.PrettyPrint{Out: buf}, buf
}
