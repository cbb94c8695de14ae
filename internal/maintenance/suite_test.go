package maintenance_test

import (
	"context"
	"io"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/rafabene/academia-backend/internal/domain/ports"
	"github.com/rafabene/academia-backend/internal/infrastructure/logging"
	"github.com/rafabene/academia-backend/internal/infrastructure/persistence/postgres/migrations"
	"github.com/rafabene/academia-backend/internal/testutil"
)

var (
	pg     *testutil.PostgresContainer
	db     *gorm.DB
	logger ports.Logger
)

func TestMaintenance(t *testing.T) {
	testutil.RequireDocker(t)
	RegisterFailHandler(Fail)
	RunSpecs(t, "Maintenance Suite")
}

var _ = BeforeSuite(func() {
	var err error
	pg, err = testutil.StartPostgres(context.Background())
	Expect(err).NotTo(HaveOccurred())

	db, err = pg.Gorm()
	Expect(err).NotTo(HaveOccurred())

	logger = logging.NewSlogLoggerWithWriter(io.Discard, "error")
})

var _ = AfterSuite(func() {
	if pg != nil {
		Expect(pg.Terminate()).To(Succeed())
	}
})

// migrate recria o schema do zero
func migrate() {
	Expect(testutil.ResetSchema(db)).To(Succeed())
	runner, err := migrations.NewRunner(db, logger, migrations.All())
	Expect(err).NotTo(HaveOccurred())
	_, err = runner.Up(context.Background())
	Expect(err).NotTo(HaveOccurred())
}
