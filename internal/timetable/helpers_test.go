package timetable

func row(code int64, section int, credits float64, timeText, name string) Row {
	return Row{
		Code:       code,
		Section:    section,
		Credits:    credits,
		TimeText:   timeText,
		Name:       name,
		Instructor: "교수",
		Department: "컴퓨터공학과",
	}
}

func key(code int64, section int) CourseKey {
	return CourseKey{Code: code, Section: section}
}

// sampleCatalog is a small term used across tests.
//
//	100-1 A  월1,2      100-2 A' 화1,2
//	200-1 B  월2,3      300-1 C  수5
//	400-1 D  (untimed)  500-1 E  월3 수5
func sampleCatalog() *Catalog {
	return BuildCatalog([]Row{
		row(100, 1, 3, "월1,2[공301]", "A"),
		row(100, 2, 3, "화1,2[공302]", "A'"),
		row(200, 1, 3, "월2,3", "B"),
		row(300, 1, 1.5, "수5", "C"),
		row(400, 1, 2, "", "D"),
		row(500, 1, 3, "월3 수5", "E"),
	})
}
