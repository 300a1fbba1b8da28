// run/worker.go

package run

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/illmade-knight/go-threadtrace/emit"
)

// Task is one unit of concurrent work. Every task emits exactly one record
// and returns; tasks never block on or talk to each other.
type Task func()

// Holder is the receiver for a member-style worker. Each Holder belongs to
// exactly one worker and is never shared, so its fields need no locking.
type Holder struct {
	id       int
	workerID string
	emitter  *emit.Emitter
}

// NewHolder creates the holder for member-style worker number id.
func NewHolder(id int, emitter *emit.Emitter) *Holder {
	return &Holder{
		id:       id,
		workerID: fmt.Sprintf("member-%s", uuid.New().String()),
		emitter:  emitter,
	}
}

// Report emits the holder's single record.
func (h *Holder) Report() {
	h.emitter.Emit(emit.StyleMember, fmt.Sprintf("Holder.Report #%d", h.id), emit.Origin(), h.workerID)
}

// FreeTask returns a free-standing task for worker number id. The worker
// identity is minted once, when the task is built, not when it runs.
func FreeTask(id int, emitter *emit.Emitter) Task {
	workerID := fmt.Sprintf("free-%s", uuid.New().String())
	return func() {
		freeReport(emitter, id, workerID)
	}
}

func freeReport(e *emit.Emitter, id int, workerID string) {
	e.Emit(emit.StyleFree, fmt.Sprintf("freeReport #%d", id), emit.Origin(), workerID)
}
