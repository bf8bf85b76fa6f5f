package report

import (
	"github.com/anujrohit1/pubfilter/internal/app/jsonvalue"
	"github.com/anujrohit1/pubfilter/internal/domain"
)

// ValidField is the member that marks a response entry as valid.
const ValidField = "valid"

// QualifyingKeys parses a response body and collects, in response order, the
// keys whose value is an object with "valid" set to the literal true.
//
// A body that is not JSON is KindInvalidResponseJSON. A JSON root other than
// an object is not an error: the report comes back with ReportNotObject.
func QualifyingKeys(body []byte) (domain.Report, error) {
	doc, err := jsonvalue.Parse(body)
	if err != nil {
		return domain.Report{}, &domain.OpError{
			Op:   "report.parse",
			Kind: domain.KindInvalidResponseJSON,
			Err:  err,
		}
	}

	if doc.Shape != domain.ShapeObject {
		return domain.Report{Shape: domain.ReportNotObject}, nil
	}

	keys := []string{}
	for p := doc.Object.Oldest(); p != nil; p = p.Next() {
		if jsonvalue.IsBool(p.Value, ValidField, true) {
			keys = append(keys, p.Key)
		}
	}
	return domain.Report{Shape: domain.ReportObject, Keys: keys}, nil
}
