package models

import "slices"

// None marks an optional choice as not selected.
const None = "none"

// Backends that can be paired with a frontend framework.
const (
	BackendNone       = None
	BackendNode       = "node"
	BackendExpress    = "express"
	BackendFastify    = "fastify"
	BackendHono       = "hono"
	BackendNestJS     = "nestjs"
	BackendNextAPI    = "next-api"
	BackendCloudflare = "cloudflare-workers"
	BackendConvex     = "convex"
)

// Databases.
const (
	DatabaseNone     = None
	DatabasePostgres = "postgres"
	DatabaseMySQL    = "mysql"
	DatabaseMongoDB  = "mongodb"
	DatabaseSQLite   = "sqlite"
	DatabaseSupabase = "supabase"
	DatabaseFirebase = "firebase"
)

// ORMs.
const (
	ORMNone     = None
	ORMPrisma   = "prisma"
	ORMDrizzle  = "drizzle"
	ORMTypeORM  = "typeorm"
	ORMMongoose = "mongoose"
)

// Styling choices. The values are part of the template skip-rule contract.
const (
	StylingCSS      = "css"
	StylingSCSS     = "scss"
	StylingTailwind = "tailwind"
	StylingStyled   = "styled-components"
)

// Runtimes.
const (
	RuntimeNode = "node"
	RuntimeBun  = "bun"
	RuntimeDeno = "deno"
)

// Package managers.
const (
	PackageManagerNPM  = "npm"
	PackageManagerYarn = "yarn"
	PackageManagerPNPM = "pnpm"
	PackageManagerBun  = "bun"
)

var (
	backends        = []string{BackendNone, BackendNode, BackendExpress, BackendFastify, BackendHono, BackendNestJS, BackendNextAPI, BackendCloudflare, BackendConvex}
	databases       = []string{DatabaseNone, DatabasePostgres, DatabaseMySQL, DatabaseMongoDB, DatabaseSQLite, DatabaseSupabase, DatabaseFirebase}
	orms            = []string{ORMNone, ORMPrisma, ORMDrizzle, ORMTypeORM, ORMMongoose}
	stylings        = []string{StylingCSS, StylingSCSS, StylingTailwind, StylingStyled}
	runtimes        = []string{RuntimeNode, RuntimeBun, RuntimeDeno}
	packageManagers = []string{PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM, PackageManagerBun}
	apiClients      = []string{None, "tanstack-query", "swr", "axios", "trpc"}
	deployments     = []string{None, "vercel", "netlify", "cloudflare-pages", "railway", "render", "docker"}
	aiAssistants    = []string{None, "claude", "cursor", "copilot", "gemini", "windsurf"}
)

// Backends returns every supported backend value.
func Backends() []string { return slices.Clone(backends) }

// Databases returns every supported database value.
func Databases() []string { return slices.Clone(databases) }

// ORMs returns every supported ORM value.
func ORMs() []string { return slices.Clone(orms) }

// Stylings returns every supported styling value.
func Stylings() []string { return slices.Clone(stylings) }

// Runtimes returns every supported runtime value.
func Runtimes() []string { return slices.Clone(runtimes) }

// PackageManagers returns every supported package manager.
func PackageManagers() []string { return slices.Clone(packageManagers) }

// APIClients returns every supported API client value.
func APIClients() []string { return slices.Clone(apiClients) }

// DeploymentMethods returns every supported deployment target.
func DeploymentMethods() []string { return slices.Clone(deployments) }

// AIAssistants returns every supported AI assistant.
func AIAssistants() []string { return slices.Clone(aiAssistants) }

func IsValidBackend(v string) bool          { return slices.Contains(backends, v) }
func IsValidDatabase(v string) bool         { return slices.Contains(databases, v) }
func IsValidORM(v string) bool              { return slices.Contains(orms, v) }
func IsValidStyling(v string) bool          { return slices.Contains(stylings, v) }
func IsValidRuntime(v string) bool          { return slices.Contains(runtimes, v) }
func IsValidPackageManager(v string) bool   { return slices.Contains(packageManagers, v) }
func IsValidAPIClient(v string) bool        { return slices.Contains(apiClients, v) }
func IsValidDeploymentMethod(v string) bool { return slices.Contains(deployments, v) }
func IsValidAIAssistant(v string) bool      { return slices.Contains(aiAssistants, v) }

// Selected reports whether an optional choice holds a real value.
func Selected(v string) bool {
	return v != "" && v != None
}
