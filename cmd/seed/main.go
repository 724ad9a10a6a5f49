// Seed fills the backing file with demonstration data: one pengawas account
// with schools, tasks, supervisions and additional activities for the
// current month. Intended for local development.
package main

import (
	"context"
	stderrors "errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sipengawas/internal/config"
	"sipengawas/internal/errors"
	"sipengawas/internal/model"
	"sipengawas/internal/store"
)

const demoUsername = "pengawas.demo"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	ctx := context.Background()

	st, err := store.Open(cfg.DataFile)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	if _, err := st.GetUserByUsername(ctx, demoUsername); err == nil {
		log.Println("Demo user already exists, nothing to do")
		return
	} else if !stderrors.Is(err, errors.ErrUserNotFound) {
		log.Fatalf("Failed to check demo user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("rahasia1"), 10)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user, err := st.CreateUser(ctx, &model.User{
		Username: demoUsername,
		Password: string(hashed),
		FullName: "Wayan Yogaswara",
	})
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	school, err := st.CreateSchool(ctx, &model.School{
		UserID:  user.ID,
		Name:    "SDN 1 Denpasar",
		Address: "Jl. Surapati No. 2, Denpasar",
		Contact: "0361-222333",
	})
	if err != nil {
		log.Fatalf("Failed to create school: %v", err)
	}

	now := time.Now()
	if _, err := st.CreateTask(ctx, &model.Task{
		UserID:    user.ID,
		Title:     "Menyusun program pengawasan semester",
		Category:  "Perencanaan",
		Date:      now,
		Completed: true,
	}); err != nil {
		log.Fatalf("Failed to create task: %v", err)
	}
	if _, err := st.CreateTask(ctx, &model.Task{
		UserID:   user.ID,
		Title:    "Evaluasi hasil supervisi",
		Category: "Evaluasi",
		Date:     now,
	}); err != nil {
		log.Fatalf("Failed to create task: %v", err)
	}

	if _, err := st.CreateSupervision(ctx, &model.Supervision{
		UserID:   user.ID,
		SchoolID: &school.ID,
		School:   school.Name,
		Type:     model.SupervisionAkademik,
		Date:     now,
		Findings: "Perangkat pembelajaran lengkap, pelaksanaan sesuai RPP",
	}); err != nil {
		log.Fatalf("Failed to create supervision: %v", err)
	}

	if _, err := st.CreateAdditionalTask(ctx, &model.AdditionalTask{
		UserID:    user.ID,
		Name:      "Workshop kurikulum merdeka",
		Date:      now,
		Location:  "Dinas Pendidikan Provinsi",
		Organizer: "Dinas Pendidikan",
	}); err != nil {
		log.Fatalf("Failed to create additional task: %v", err)
	}

	log.Printf("Seed complete: user %s (password rahasia1) with sample records", demoUsername)
}
