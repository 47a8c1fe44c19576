package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ashesthetic/hello-deer/backend/internal/domain"
	"github.com/ashesthetic/hello-deer/backend/internal/schedule"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"Aiden", "Bella", "Carlos", "Dana", "Eli", "Fiona", "Gabe", "Hana",
	"Ivan", "Jade", "Kyle", "Lena", "Marco", "Nina", "Omar", "Priya",
	"Quinn", "Rosa", "Sam", "Tara",
}

var commonLastNames = []string{
	"Anderson", "Brooks", "Chen", "Diaz", "Evans", "Flores", "Grant",
	"Hughes", "Iverson", "Jensen", "Khan", "Lopez", "Murphy", "Nguyen",
	"Ortiz", "Patel", "Reyes", "Singh", "Torres", "Walker",
}

var positions = []string{"Cashier", "Fuel Attendant", "Shift Lead", "Stocker"}

func GenerateRandomEmployee(emailDomain string) *domain.Employee {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]

	return &domain.Employee{
		FullLegalName: first + " " + last,
		PreferredName: first,
		Email:         fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), rand.Intn(100), emailDomain),
		Position:      positions[rand.Intn(len(positions))],
		Status:        domain.EmployeeStatusActive,
	}
}

var digits = "0123456789"

func GenerateRandomUser(password string, emailDomain string) (*domain.User, error) {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]

	username := strings.ToLower(first[:1] + last)
	for i := 0; i < rand.Intn(3)+1; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     first + " " + last,
		Email:        username + "@" + emailDomain,
		Role:         domain.RoleManager,
	}, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

// GenerateRandomWeekShifts produces complete grid-aligned shifts on a random
// subset of the week's days.
func GenerateRandomWeekShifts(week schedule.WeekWindow) []domain.ScheduleShift {
	options := schedule.ClockOptions()

	shifts := make([]domain.ScheduleShift, 0, 7)
	for _, day := range week.Dates {
		if rand.Intn(7) < 2 {
			// day off
			continue
		}

		// shifts run between two and nine hours
		start := rand.Intn(len(options) - 8)
		span := rand.Intn(29) + 8
		end := start + span
		if end > len(options)-1 {
			end = len(options) - 1
		}

		shifts = append(shifts, domain.ScheduleShift{
			Date:      day.Format(schedule.DateLayout),
			StartTime: options[start],
			EndTime:   options[end],
			TotalHour: schedule.HoursFor(options[start], options[end]),
		})
	}

	return shifts
}
