package seeder

func Defaults() []Seeder {
	return []Seeder{
		SubjectsSeeder{},
		JobsSeeder{},
		AptitudeTestSeeder{},
	}
}
