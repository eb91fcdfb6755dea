package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"timetable_backend/internals/configs"
	roomModel "timetable_backend/internals/features/timetable/rooms/model"
	subjectModel "timetable_backend/internals/features/timetable/subjects/model"
	teacherModel "timetable_backend/internals/features/timetable/teachers/model"
	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
	classModel "timetable_backend/internals/features/timetable/years/model"
	authModel "timetable_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=timetable&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // plays well with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates the schema. Timeslot last so its
// cascade FKs find their parents.
func Migrate() {
	err := DB.AutoMigrate(
		&authModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&roomModel.BlockModel{},
		&roomModel.RoomModel{},
		&teacherModel.TeacherModel{},
		&teacherModel.TeacherRoomModel{},
		&teacherModel.TeacherSubjectModel{},
		&classModel.ClassGroupModel{},
		&classModel.ClassGroupSubjectModel{},
		&classModel.YearGroupModel{},
		&classModel.YearGroupClassModel{},
		&subjectModel.SubjectModel{},
		&timeslotModel.TimeslotModel{},
	)
	if err != nil {
		log.Fatalf("❌ migrate failed: %v", err)
	}
	log.Println("✅ schema migrated.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond) // let the server come up first
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
