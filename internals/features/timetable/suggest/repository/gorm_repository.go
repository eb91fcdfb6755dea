package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetable_backend/internals/features/timetable/suggest/service"
	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
	yearModel "timetable_backend/internals/features/timetable/years/model"
)

/* =======================================================
   GormReader: single gorm-backed implementation of every
   reader contract the suggestion services depend on.
   ======================================================= */

type GormReader struct {
	DB *gorm.DB
}

func NewGormReader(db *gorm.DB) *GormReader {
	return &GormReader{DB: db}
}

var (
	_ service.ScheduleReader = (*GormReader)(nil)
	_ service.TeacherReader  = (*GormReader)(nil)
	_ service.RoomReader     = (*GormReader)(nil)
	_ service.ClassReader    = (*GormReader)(nil)
	_ service.SubjectReader  = (*GormReader)(nil)
)

/* =======================
   ScheduleReader
======================= */

func (r *GormReader) SlotsAt(day timeslotModel.Weekday, unit timeslotModel.Unit) ([]service.SlotFact, error) {
	var rows []service.SlotFact
	err := r.DB.Table("timeslots").
		Select(`timeslots.timeslot_teacher_id AS teacher_id,
			timeslots.timeslot_room_id AS room_id,
			timeslots.timeslot_subject_id AS subject_id,
			timeslots.timeslot_class_group_id AS class_group_id,
			subjects.subject_name AS subject_name,
			class_groups.class_group_code AS class_code`).
		Joins("JOIN subjects ON subjects.subject_id = timeslots.timeslot_subject_id").
		Joins("JOIN class_groups ON class_groups.class_group_id = timeslots.timeslot_class_group_id").
		Where("timeslots.timeslot_day = ? AND timeslots.timeslot_unit = ?", day, unit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormReader) CountForTeacher(teacherID uuid.UUID) (int, error) {
	var count int64
	err := r.DB.Model(&timeslotModel.TimeslotModel{}).
		Where("timeslot_teacher_id = ?", teacherID).
		Count(&count).Error
	return int(count), err
}

func (r *GormReader) CountForClassSubject(classCode, subjectName string) (int, error) {
	var count int64
	err := r.DB.Table("timeslots").
		Joins("JOIN class_groups ON class_groups.class_group_id = timeslots.timeslot_class_group_id").
		Joins("JOIN subjects ON subjects.subject_id = timeslots.timeslot_subject_id").
		Where("class_groups.class_group_code = ? AND subjects.subject_name = ?", classCode, subjectName).
		Count(&count).Error
	return int(count), err
}

/* =======================
   TeacherReader
======================= */

func (r *GormReader) AllTeachers() ([]service.TeacherInfo, error) {
	var rows []service.TeacherInfo
	err := r.DB.Table("teachers").
		Select("teacher_id AS id, teacher_name AS name, teacher_lessons_weekly AS lessons_weekly").
		Order("teacher_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *GormReader) CompetentTeacherIDs(subjectName string) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	err := r.DB.Table("teacher_subjects").
		Joins("JOIN subjects ON subjects.subject_id = teacher_subjects.teacher_subject_subject_id").
		Where("subjects.subject_name = ?", subjectName).
		Distinct().
		Pluck("teacher_subjects.teacher_subject_teacher_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (r *GormReader) HabitualRoomNumbers(teacherID uuid.UUID) ([]string, error) {
	var numbers []string
	err := r.DB.Table("teacher_rooms").
		Joins("JOIN rooms ON rooms.room_id = teacher_rooms.teacher_room_room_id").
		Where("teacher_rooms.teacher_room_teacher_id = ?", teacherID).
		Order("rooms.room_number ASC").
		Pluck("rooms.room_number", &numbers).Error
	return numbers, err
}

func (r *GormReader) HabitualRoomIDsByName(teacherName string) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	err := r.DB.Table("teacher_rooms").
		Joins("JOIN teachers ON teachers.teacher_id = teacher_rooms.teacher_room_teacher_id").
		Where("teachers.teacher_name = ?", teacherName).
		Pluck("teacher_rooms.teacher_room_room_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

/* =======================
   RoomReader
======================= */

func (r *GormReader) AllRooms() ([]service.RoomInfo, error) {
	return r.roomsWhere(nil)
}

func (r *GormReader) RoomsWithCapacityAtLeast(n int) ([]service.RoomInfo, error) {
	return r.roomsWhere(func(db *gorm.DB) *gorm.DB {
		return db.Where("room_capacity >= ?", n)
	})
}

func (r *GormReader) roomsWhere(scope func(*gorm.DB) *gorm.DB) ([]service.RoomInfo, error) {
	db := r.DB.Table("rooms").
		Select(`room_id AS id, room_number AS number, room_type AS type,
			COALESCE(room_description, '') AS description, room_capacity AS capacity`).
		Order("room_number ASC")
	if scope != nil {
		db = scope(db)
	}
	var rows []service.RoomInfo
	err := db.Scan(&rows).Error
	return rows, err
}

/* =======================
   ClassReader
======================= */

func (r *GormReader) PupilCount(classCode string) (int, error) {
	var class yearModel.ClassGroupModel
	err := r.DB.Where("class_group_code = ?", classCode).First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, service.ErrNotFound
		}
		return 0, err
	}
	return class.ClassGroupNumPupils, nil
}

/* =======================
   SubjectReader
======================= */

func (r *GormReader) SubjectsOfYearGroup(yearGroupName string) ([]service.SubjectInfo, error) {
	var rows []service.SubjectInfo
	err := r.DB.Table("subjects").
		Joins("JOIN year_groups ON year_groups.year_group_id = subjects.subject_year_group_id").
		Select("subjects.subject_id AS id, subjects.subject_name AS name, subjects.subject_count AS count").
		Where("year_groups.year_group_name = ?", yearGroupName).
		Order("subjects.subject_name ASC").
		Scan(&rows).Error
	return rows, err
}
