package source

// Object reference kinds, strongest claim first. Classification picks
// the first kind a reference exhibits, so a pinned object is reported
// as pinned even while local references to it exist.
const (
	ReferenceTypePinnedInMemory    = "PINNED_IN_MEMORY"
	ReferenceTypeLocalReference    = "LOCAL_REFERENCE"
	ReferenceTypeUsedByPendingTask = "USED_BY_PENDING_TASK"
	ReferenceTypeCapturedInObject  = "CAPTURED_IN_OBJECT"
	ReferenceTypeActorHandle       = "ACTOR_HANDLE"
)

func classifyReference(ref ObjectRefInfo) string {
	switch {
	case ref.PinnedInMemory:
		return ReferenceTypePinnedInMemory
	case ref.LocalRefCount > 0:
		return ReferenceTypeLocalReference
	case ref.SubmittedTaskRefCount > 0:
		return ReferenceTypeUsedByPendingTask
	case len(ref.ContainedInOwned) > 0:
		return ReferenceTypeCapturedInObject
	default:
		return ReferenceTypeActorHandle
	}
}

// SummarizeWorkerStats flattens raw per worker object reports into
// one classified entry per held reference. Worker identity (pid, ip,
// worker type) is stamped onto every entry it contributed.
func SummarizeWorkerStats(stats []WorkerStats) []ObjectEntry {
	var entries []ObjectEntry
	for _, ws := range stats {
		for _, ref := range ws.ObjectRefs {
			entries = append(entries, ObjectEntry{
				ObjectID:              ref.ObjectID,
				PID:                   ws.PID,
				IP:                    ws.IP,
				WorkerType:            ws.WorkerType,
				ObjectSize:            ref.ObjectSize,
				ReferenceType:         classifyReference(ref),
				CallSite:              ref.CallSite,
				TaskStatus:            ref.TaskStatus,
				LocalRefCount:         ref.LocalRefCount,
				PinnedInMemory:        ref.PinnedInMemory,
				SubmittedTaskRefCount: ref.SubmittedTaskRefCount,
				ContainedInOwned:      ref.ContainedInOwned,
			})
		}
	}
	return entries
}
