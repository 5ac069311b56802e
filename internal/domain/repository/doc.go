// Package repository define las interfaces de repositorio de dominio.
//
// Estas interfaces representan contratos de negocio, independientes del
// almacenamiento subyacente. Las implementaciones concretas viven en
// internal/store/ (pg para producción, mem para dev/tests).
//
// Convenciones:
//   - Context siempre es el primer parámetro
//   - Errores de dominio están en errors.go
//   - Username y email se normalizan a lowercase ANTES de llegar acá;
//     los repos asumen valores ya case-folded
package repository
