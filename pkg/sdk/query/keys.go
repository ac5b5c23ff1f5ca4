package query

import "github.com/aaalawyers/trainingportal/pkg/sdk/cache"

// Cache key kinds. Each read accessor owns exactly one kind.
const (
	KindCourses         = "courses"
	KindCourse          = "course"
	KindAllLessons      = "all-lessons"
	KindLessonsByCourse = "lessons-by-course"
	KindLesson          = "lesson"
	KindTraineeProgress = "trainee-progress"
	KindCallerProfile   = "caller-profile"
	KindUserProfile     = "user-profile"
	KindCallerRole      = "caller-role"
	KindIsAdmin         = "is-admin"
)

func CoursesKey() cache.Key {
	return cache.Key{Kind: KindCourses}
}

func CourseKey(id string) cache.Key {
	return cache.Key{Kind: KindCourse, Param: id}
}

// AllLessonsKey addresses the derived fan-out read, not a remote list.
func AllLessonsKey() cache.Key {
	return cache.Key{Kind: KindAllLessons}
}

func LessonsByCourseKey(courseID string) cache.Key {
	return cache.Key{Kind: KindLessonsByCourse, Param: courseID}
}

func LessonKey(id string) cache.Key {
	return cache.Key{Kind: KindLesson, Param: id}
}

func TraineeProgressKey() cache.Key {
	return cache.Key{Kind: KindTraineeProgress}
}

func CallerProfileKey() cache.Key {
	return cache.Key{Kind: KindCallerProfile}
}

func UserProfileKey(identity string) cache.Key {
	return cache.Key{Kind: KindUserProfile, Param: identity}
}

func CallerRoleKey() cache.Key {
	return cache.Key{Kind: KindCallerRole}
}

func IsAdminKey() cache.Key {
	return cache.Key{Kind: KindIsAdmin}
}
