package utils

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID แปลง hex id จาก path param
// id ที่แปลงไม่ได้ไม่มีทางมีอยู่ใน DB จึงคืน NotFound พร้อม notFoundMsg
func ParseObjectID(hex, notFoundMsg string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(hex))
	if err != nil {
		return primitive.NilObjectID, NotFound(notFoundMsg)
	}
	return id, nil
}
