package seeder

import "career-compass/internal/repository"

func Defaults() []Seeder {
	return []Seeder{
		CareersSeeder{
			Jobs:    repository.ReferenceJobs(),
			Details: repository.ReferenceDetails(),
		},
	}
}
