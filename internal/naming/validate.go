package naming

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jakmyungso/api/internal/domain"
)

// minBirthYear bounds accepted birth years from below.
const minBirthYear = 1924

// ValidateRequest checks the user-supplied naming request fields and
// returns the first violation as a user-facing Korean message.
func ValidateRequest(surname string, gender domain.Gender, birth *domain.BirthInfo, now time.Time) error {
	trimmed := strings.TrimSpace(surname)
	if trimmed == "" {
		return errors.New("성(姓)을 입력해주세요.")
	}
	if len([]rune(trimmed)) > 3 {
		return errors.New("성은 3글자 이하로 입력해주세요.")
	}

	if gender != domain.GenderMale && gender != domain.GenderFemale {
		return errors.New("성별을 선택해주세요.")
	}

	if birth == nil {
		return nil
	}

	if birth.Year != 0 {
		maxYear := now.Year() + 1
		if birth.Year < minBirthYear || birth.Year > maxYear {
			return fmt.Errorf("유효한 출생년도를 입력해주세요 (%d-%d).", minBirthYear, maxYear)
		}
	}
	if birth.Month != 0 && (birth.Month < 1 || birth.Month > 12) {
		return errors.New("유효한 출생 월을 입력해주세요 (1-12).")
	}
	if birth.Day != 0 {
		if birth.Day < 1 || birth.Day > 31 {
			return errors.New("유효한 출생 일을 입력해주세요 (1-31).")
		}
		if birth.Year != 0 && birth.Month >= 1 && birth.Month <= 12 {
			days := daysInMonth(birth.Year, birth.Month)
			if birth.Day > days {
				return fmt.Errorf("%d월은 %d일까지만 있습니다.", birth.Month, days)
			}
		}
	}
	if birth.HourKnown {
		if birth.Hour < 0 || birth.Hour > 23 {
			return errors.New("유효한 시간을 입력해주세요 (0-23).")
		}
		if birth.Minute < 0 || birth.Minute > 59 {
			return errors.New("유효한 분을 입력해주세요 (0-59).")
		}
	}
	return nil
}

func daysInMonth(year, month int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}
