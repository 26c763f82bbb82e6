// seed puebla los datos de referencia del banco de sangre: las 8
// combinaciones de tipo de sangre, el catálogo de permisos, los roles base
// (admin, entity, donor) con sus concesiones, y el usuario administrador
// inicial. Es idempotente: puede correrse varias veces sin duplicar filas.
//
// Uso: go run ./cmd/seed
// Credenciales del admin vía SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JuanCami009/banco-sangre-api/internal/domain/access"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
	"github.com/JuanCami009/banco-sangre-api/internal/infrastructure/postgres"
	"github.com/JuanCami009/banco-sangre-api/pkg/config"
	"github.com/JuanCami009/banco-sangre-api/pkg/logger"
)

// rolePermissions define qué permisos recibe cada rol base.
var rolePermissions = map[string][]string{
	entity.RoleAdmin: access.All,
	entity.RoleEntity: {
		access.PermBloodRead,
		access.PermDonorRead,
		access.PermRequestRead,
		access.PermRequestWrite,
		access.PermBagRead,
	},
	entity.RoleDonor: {
		access.PermBloodRead,
		access.PermRequestRead,
		access.PermBagRead,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: "seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	bloodRepo := postgres.NewBloodRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	permRepo := postgres.NewPermissionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// 1. Tipos de sangre: grupo × factor RH.
	for _, group := range entity.BloodGroups {
		for _, rh := range entity.RHFactors {
			existing, err := bloodRepo.GetByGroupAndRH(group, rh)
			if err != nil {
				log.Fatal().Err(err).Msg("consultar tipo de sangre")
			}
			if existing != nil {
				continue
			}
			b := &entity.Blood{ID: uuid.NewString(), Group: group, RHFactor: rh}
			if err := bloodRepo.Create(b); err != nil {
				log.Fatal().Err(err).Str("label", b.Label()).Msg("sembrar tipo de sangre")
			}
			log.Info().Str("label", b.Label()).Msg("tipo de sangre sembrado")
		}
	}

	// 2. Catálogo de permisos.
	permIDs := make(map[string]string, len(access.All))
	for _, name := range access.All {
		existing, err := permRepo.GetByName(name)
		if err != nil {
			log.Fatal().Err(err).Msg("consultar permiso")
		}
		if existing != nil {
			permIDs[name] = existing.ID
			continue
		}
		p := &entity.Permission{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
		if err := permRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("permission", name).Msg("sembrar permiso")
		}
		permIDs[name] = p.ID
		log.Info().Str("permission", name).Msg("permiso sembrado")
	}

	// 3. Roles base con sus concesiones (AddPermission es idempotente).
	roleIDs := make(map[string]string, len(rolePermissions))
	for _, name := range []string{entity.RoleAdmin, entity.RoleEntity, entity.RoleDonor} {
		existing, err := roleRepo.GetByName(name)
		if err != nil {
			log.Fatal().Err(err).Msg("consultar rol")
		}
		if existing != nil {
			roleIDs[name] = existing.ID
		} else {
			now := time.Now()
			r := &entity.Role{ID: uuid.NewString(), Name: name, CreatedAt: now, UpdatedAt: now}
			if err := roleRepo.Create(r); err != nil {
				log.Fatal().Err(err).Str("role", name).Msg("sembrar rol")
			}
			roleIDs[name] = r.ID
			log.Info().Str("role", name).Msg("rol sembrado")
		}
		for _, perm := range rolePermissions[name] {
			if err := roleRepo.AddPermission(roleIDs[name], permIDs[perm]); err != nil {
				log.Fatal().Err(err).Str("role", name).Str("permission", perm).Msg("conceder permiso")
			}
		}
	}

	// 4. Usuario administrador inicial.
	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@banco-sangre.local")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "changeme-now")

	existing, err := userRepo.GetByEmail(adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario admin")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear contraseña admin")
		}
		now := time.Now()
		admin := &entity.User{
			ID:           uuid.NewString(),
			Email:        adminEmail,
			PasswordHash: string(hash),
			RoleID:       roleIDs[entity.RoleAdmin],
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("sembrar usuario admin")
		}
		log.Info().Str("email", adminEmail).Msg("usuario admin sembrado")
	}

	log.Info().Msg("seed completado")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
