// Package migrations contém o schema versionado do banco e o runner que o aplica.
//
// Cada migration é identificada por um timestamp numérico; a ordem de execução
// é a ordem crescente desse timestamp. Up e Down devem ser inversos entre si,
// exceto quando a migration documenta um Down sem efeito.
package migrations

import (
	"fmt"
	"sort"

	"gorm.io/gorm"
)

// Migration é um passo versionado de evolução do schema
type Migration struct {
	Version int64
	Name    string
	Up      func(tx *gorm.DB) error
	Down    func(tx *gorm.DB) error
}

// ID retorna o identificador no formato <timestamp>_<nome>
func (m Migration) ID() string {
	return fmt.Sprintf("%d_%s", m.Version, m.Name)
}

// All retorna todas as migrations do schema em ordem de execução
func All() []Migration {
	all := []Migration{
		createUsersTable,
		createStudentsTable,
		createInstructorsTable,
		addPhotoURLToInstructors,
		createStudentInstructorsTable,
		addMissingColumnsToStudents,
		retypeStudentsAmountPaid,
		createTreinosTable,
		createNotificationsTable,
		addGenderToUsers,
		createPaymentsTable,
		createAttendanceTable,
	}
	sortMigrations(all)
	return all
}

func sortMigrations(ms []Migration) {
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Version < ms[j].Version })
}

// validate garante versões únicas e funções Up/Down presentes
func validate(ms []Migration) error {
	seen := make(map[int64]string, len(ms))
	for _, m := range ms {
		if m.Version <= 0 {
			return fmt.Errorf("migration %q has invalid version %d", m.Name, m.Version)
		}
		if m.Up == nil || m.Down == nil {
			return fmt.Errorf("migration %s must define Up and Down", m.ID())
		}
		if other, ok := seen[m.Version]; ok {
			return fmt.Errorf("duplicate migration version %d (%s, %s)", m.Version, other, m.Name)
		}
		seen[m.Version] = m.Name
	}
	return nil
}
