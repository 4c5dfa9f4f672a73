package progress

import (
	"sort"
	"time"

	"goalquest/model"
)

// Bucket is one time-of-day section of a day's task list.
type Bucket struct {
	TimeOfDay model.TimeOfDay `json:"time_of_day"`
	Tasks     []*model.Task   `json:"tasks"`
}

var bucketOrder = []model.TimeOfDay{
	model.TimeOfDayMorning,
	model.TimeOfDayAfternoon,
	model.TimeOfDayEvening,
	model.TimeOfDayNotSet,
}

// GroupByTimeOfDay partitions a day's tasks into the four display
// buckets, emitted in fixed order: morning, afternoon, evening, not_set.
// The user-chosen TimeOfDay is authoritative, including the explicit
// not_set sentinel. Only when the field is missing entirely is a bucket
// derived from the scheduled hour, and that derivation is cosmetic: it
// is never written back to the task.
func GroupByTimeOfDay(tasks []*model.Task) []Bucket {
	grouped := make(map[model.TimeOfDay][]*model.Task, len(bucketOrder))
	for _, t := range tasks {
		bucket := bucketFor(t)
		grouped[bucket] = append(grouped[bucket], t)
	}

	buckets := make([]Bucket, 0, len(bucketOrder))
	for _, tod := range bucketOrder {
		tasksInBucket := grouped[tod]
		sort.SliceStable(tasksInBucket, func(i, j int) bool {
			return tasksInBucket[i].ScheduledDate.Before(tasksInBucket[j].ScheduledDate)
		})
		buckets = append(buckets, Bucket{TimeOfDay: tod, Tasks: tasksInBucket})
	}
	return buckets
}

func bucketFor(t *model.Task) model.TimeOfDay {
	if t.TimeOfDay != nil {
		return *t.TimeOfDay
	}
	return HourBucket(t.ScheduledDate)
}

// HourBucket derives a cosmetic time-of-day bucket from the hour of the
// scheduled time: before noon is morning, noon to 16:59 afternoon, the
// rest evening.
func HourBucket(scheduled time.Time) model.TimeOfDay {
	switch hour := scheduled.UTC().Hour(); {
	case hour < 12:
		return model.TimeOfDayMorning
	case hour < 17:
		return model.TimeOfDayAfternoon
	default:
		return model.TimeOfDayEvening
	}
}
