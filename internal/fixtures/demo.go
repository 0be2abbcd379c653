// Package fixtures seeds a Builder with a small, realistic UDP-style
// instance: the university's real 5-day/7-block weekly grid (see
// luccasniccolas177-timetabling-udp's internal/models/time.go) and a
// representative subset of its first- and second-semester common-core
// curriculum (internal/data/malla.go), transcribed here as plain course
// metadata rather than imported — the original Distribution/Requirement
// model was built for a room-assignment scheduler this repo does not
// implement. Credits are derived deterministically from each course's
// original lecture/assistant/lab event distribution.
package fixtures

import "timetable-scheduler/internal/timetable"

const (
	daysPerWeek  = 5
	blocksPerDay = 7
)

// eventDistribution mirrors malla.go's Distribution: how many weekly
// lecture/assistant/lab events a course carries and how many blocks each
// one occupies.
type eventDistribution struct {
	numLectures, durationLectures     int
	numAssistants, durationAssistants int
	numLabs, durationLabs             int
}

// creditsOf converts an event distribution into the credits figure the
// timetable core expects, scaled so that sessionCount(credits) reproduces
// the weekly block count the distribution originally described.
func creditsOf(d eventDistribution) int {
	blocks := d.numLectures*d.durationLectures +
		d.numAssistants*d.durationAssistants +
		d.numLabs*d.durationLabs
	return blocks * 15
}

var commonCoreDist = eventDistribution{numLectures: 2, durationLectures: 1, numAssistants: 1, durationAssistants: 1}

type demoCourse struct {
	code, name        string
	dist              eventDistribution
	requiresProfessor bool
}

// demoCourses is a first/second-semester slice of the real UDP common
// core shared by Informática (EIT), Industrial (IND) and Obras Civiles
// (EOC) engineering, taken from malla.go's "RAMOS BASICOS" section.
var demoCourses = []demoCourse{
	{code: "CBM1000", name: "álgebra y geometría", dist: commonCoreDist, requiresProfessor: true},
	{code: "CBM1001", name: "cálculo i", dist: commonCoreDist, requiresProfessor: true},
	{code: "CBQ1000", name: "química", dist: commonCoreDist, requiresProfessor: true},
	{code: "FIC1000", name: "comunicación para la ingeniería", dist: commonCoreDist, requiresProfessor: true},
	{code: "CBM1002", name: "cálculo ii", dist: commonCoreDist, requiresProfessor: true},
	{code: "CBF1000", name: "mecánica", dist: commonCoreDist, requiresProfessor: true},
	{code: "CII1000", name: "contabilidad y costos", dist: commonCoreDist, requiresProfessor: true},
	{code: "CBE2000", name: "probabilidades y estadística", dist: commonCoreDist, requiresProfessor: true},
	// Estadía: a supervised practicum block that needs a free slot for the
	// whole group but no lecturing professor, per malla.go's residency rows.
	{code: "EST1000", name: "estadía profesional i", dist: eventDistribution{numLectures: 1, durationLectures: 1}, requiresProfessor: false},
}

type demoProfessor struct {
	name    string
	teaches []string
}

var demoProfessors = []demoProfessor{
	{name: "M. Soto", teaches: []string{"CBM1000", "CBM1001", "CBM1002"}},
	{name: "R. Pizarro", teaches: []string{"CBQ1000", "CBF1000"}},
	{name: "A. Hidalgo", teaches: []string{"FIC1000", "CII1000"}},
	{name: "P. Contreras", teaches: []string{"CBE2000", "CBM1001"}},
}

// Seed populates b with the demo UDP instance: the real 35-slot weekly
// grid, a handful of professors covering the common core, the course
// subset above, and two student groups (EIT and IND, first semester).
func Seed(b *timetable.Builder) {
	slotID := 1
	for day := 1; day <= daysPerWeek; day++ {
		for block := 0; block < blocksPerDay; block++ {
			startH, startM, endH, endM := blockTimes(block)
			b.AddTimeSlot(slotID, day, startH, startM, endH, endM)
			slotID++
		}
	}
	totalSlots := slotID - 1

	allSlots := make([]int, totalSlots)
	for i := range allSlots {
		allSlots[i] = i + 1
	}

	for i, p := range demoProfessors {
		b.AddProfessor(i+1, p.name, allSlots, p.teaches)
	}

	courseIDs := make([]int, 0, len(demoCourses))
	for i, c := range demoCourses {
		id := i + 1
		b.AddCourse(id, c.name, c.code, creditsOf(c.dist), 1, c.requiresProfessor)
		courseIDs = append(courseIDs, id)
	}

	b.AddGroup(1, 1, courseIDs)
	b.AddGroup(2, 1, courseIDs)
}

// blockTimes returns the start/end hour and minute for one of the
// university's seven daily blocks, per the real UDP schedule.
func blockTimes(block int) (startH, startM, endH, endM int) {
	starts := [blocksPerDay][2]int{
		{8, 30}, {10, 0}, {11, 30}, {13, 0}, {14, 30}, {16, 0}, {17, 25},
	}
	ends := [blocksPerDay][2]int{
		{9, 50}, {11, 20}, {12, 50}, {14, 20}, {15, 50}, {17, 20}, {18, 45},
	}
	return starts[block][0], starts[block][1], ends[block][0], ends[block][1]
}
