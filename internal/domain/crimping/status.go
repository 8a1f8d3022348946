package crimping

// RecordStatus is the audit state of an inspection record.
//
// A record is created Pending and moves to Pass or Fail through an
// explicit audit action. Audited records never return to Pending.
type RecordStatus int

const (
	StatusPending RecordStatus = 0
	StatusPass    RecordStatus = 1
	StatusFail    RecordStatus = 2
)

// ValidAuditTarget reports whether status is an allowed audit outcome.
// Pending is not a target: an audit always resolves the record.
func ValidAuditTarget(status RecordStatus) bool {
	return status == StatusPass || status == StatusFail
}
