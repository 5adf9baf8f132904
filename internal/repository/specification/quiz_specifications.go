package specification

import "gorm.io/gorm"

// ByTopic matches questions whose topic contains the query, case-insensitive,
// so "biology" also reaches "Marine Biology".
type ByTopic struct {
	Topic string
}

func (s ByTopic) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic ILIKE ?", "%"+s.Topic+"%")
}

type ByDifficulty struct {
	Difficulty string
}

func (s ByDifficulty) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("difficulty = ?", s.Difficulty)
}
