package services

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// parseObjectID validates the 24-hex identifier shape before anything
// reaches the store.
func parseObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, domain.BadRequest("%s is not a valid id.", id)
	}
	return oid, nil
}

func parseObjectIDs(ids []string) ([]bson.ObjectID, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := parseObjectID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}

// slugify derives a URL slug from a display name
func slugify(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

// stripProtected removes fields a caller may never patch directly
func stripProtected(set domain.Filter, fields ...string) domain.Filter {
	cleaned := domain.Filter{}
	for k, v := range set {
		cleaned[k] = v
	}
	for _, f := range fields {
		delete(cleaned, f)
	}
	return cleaned
}
