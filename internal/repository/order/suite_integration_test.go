//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/frio-catalog/migrations"
	"github.com/you-humble/frio-catalog/platform/db/migrator"
	"github.com/you-humble/frio-catalog/platform/logger"
	pgtc "github.com/you-humble/frio-catalog/platform/testcontainers/postgres"
)

var (
	ctx context.Context
	pgC *pgtc.Container
)

func TestOrderRepositoryIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Order Repository Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	By("starting postgres container")
	var err error
	pgC, err = pgtc.NewContainer(ctx)
	Expect(err).NotTo(HaveOccurred())

	Eventually(func(g Gomega) {
		g.Expect(pgC.Pool().Ping(ctx)).To(Succeed())
	}).WithTimeout(10 * time.Second).WithPolling(200 * time.Millisecond).Should(Succeed())

	By("running migrations")
	db := stdlib.OpenDBFromPool(pgC.Pool())
	defer db.Close()
	Expect(migrator.NewMigrator(db, migrations.FS, ".").Up(ctx)).To(Succeed())
})

var _ = AfterSuite(func() {
	if pgC != nil {
		_ = pgC.Terminate(ctx)
	}
})

var _ = BeforeEach(func() {
	By("cleaning orders table")
	_, err := pgC.Pool().Exec(ctx, "TRUNCATE TABLE orders CASCADE")
	Expect(err).NotTo(HaveOccurred())
})
