package catalog

import "slices"

// Session strategies recorded in provider descriptors.
const (
	SessionJWT      = "jwt"
	SessionDatabase = "database"
	SessionManaged  = "managed"
)

// AuthProvider describes an authentication integration.
type AuthProvider struct {
	ID   string
	Name string
	// Packages keyed by framework id, with a Wildcard fallback.
	Packages            map[string][]string
	EnvVars             []EnvVar
	RequiresDatabase    bool
	SupportedFrameworks []string
	SessionStrategy     string
	// PrismaModels are the model names the schema patch adds; PrismaSchema
	// is the text appended when none of them is present.
	PrismaModels []string
	PrismaSchema string
}

// SupportsFramework reports whether the provider can be used with id.
func (p AuthProvider) SupportsFramework(id string) bool {
	return supports(p.SupportedFrameworks, id)
}

const authJSPrismaSchema = `
model Account {
  id                String  @id @default(cuid())
  userId            String
  type              String
  provider          String
  providerAccountId String
  refresh_token     String?
  access_token      String?
  expires_at        Int?
  token_type        String?
  scope             String?
  id_token          String?
  session_state     String?
  user              User    @relation(fields: [userId], references: [id], onDelete: Cascade)

  @@unique([provider, providerAccountId])
}

model Session {
  id           String   @id @default(cuid())
  sessionToken String   @unique
  userId       String
  expires      DateTime
  user         User     @relation(fields: [userId], references: [id], onDelete: Cascade)
}

model User {
  id            String    @id @default(cuid())
  name          String?
  email         String?   @unique
  emailVerified DateTime?
  image         String?
  accounts      Account[]
  sessions      Session[]
}

model VerificationToken {
  identifier String
  token      String   @unique
  expires    DateTime

  @@unique([identifier, token])
}
`

const betterAuthPrismaSchema = `
model User {
  id            String    @id
  name          String
  email         String    @unique
  emailVerified Boolean   @default(false)
  image         String?
  createdAt     DateTime  @default(now())
  updatedAt     DateTime  @updatedAt
  sessions      Session[]
  accounts      Account[]
}

model Session {
  id        String   @id
  expiresAt DateTime
  token     String   @unique
  ipAddress String?
  userAgent String?
  userId    String
  user      User     @relation(fields: [userId], references: [id], onDelete: Cascade)
  createdAt DateTime @default(now())
  updatedAt DateTime @updatedAt
}

model Account {
  id           String    @id
  accountId    String
  providerId   String
  userId       String
  user         User      @relation(fields: [userId], references: [id], onDelete: Cascade)
  accessToken  String?
  refreshToken String?
  idToken      String?
  password     String?
  createdAt    DateTime  @default(now())
  updatedAt    DateTime  @updatedAt
}

model Verification {
  id         String   @id
  identifier String
  value      String
  expiresAt  DateTime
  createdAt  DateTime @default(now())
  updatedAt  DateTime @updatedAt
}
`

var authProviders = []AuthProvider{
	{
		ID:   "better-auth",
		Name: "Better Auth",
		Packages: map[string][]string{
			Wildcard: {"better-auth"},
		},
		EnvVars: []EnvVar{
			{Name: "BETTER_AUTH_SECRET", Secret: true, Description: "Session signing secret"},
			{Name: "BETTER_AUTH_URL", Value: "http://localhost:3000"},
		},
		RequiresDatabase:    true,
		SupportedFrameworks: []string{"react", "vue", "next", "nuxt", "astro", "remix", "solid", "svelte", "tanstack-start", "vite"},
		SessionStrategy:     SessionDatabase,
		PrismaModels:        []string{"User", "Session", "Account", "Verification"},
		PrismaSchema:        betterAuthPrismaSchema,
	},
	{
		ID:   "auth.js",
		Name: "Auth.js",
		Packages: map[string][]string{
			"next":   {"next-auth@beta", "@auth/prisma-adapter"},
			"svelte": {"@auth/sveltekit", "@auth/prisma-adapter"},
			"solid":  {"@auth/solid-start", "@auth/prisma-adapter"},
			"nuxt":   {"@sidebase/nuxt-auth", "next-auth@4"},
			Wildcard: {"@auth/core", "@auth/prisma-adapter"},
		},
		EnvVars: []EnvVar{
			{Name: "AUTH_SECRET", Secret: true},
			{Name: "AUTH_GITHUB_ID", Value: "your-github-client-id"},
			{Name: "AUTH_GITHUB_SECRET", Value: "your-github-client-secret"},
			{Name: "NEXTAUTH_URL", Value: "http://localhost:3000"},
		},
		RequiresDatabase:    true,
		SupportedFrameworks: []string{"next", "svelte", "solid", "nuxt", "remix"},
		SessionStrategy:     SessionDatabase,
		PrismaModels:        []string{"Account", "Session", "User", "VerificationToken"},
		PrismaSchema:        authJSPrismaSchema,
	},
	{
		ID:   "clerk",
		Name: "Clerk",
		Packages: map[string][]string{
			"next":         {"@clerk/nextjs"},
			"react":        {"@clerk/clerk-react"},
			"vite":         {"@clerk/clerk-react"},
			"remix":        {"@clerk/remix"},
			"astro":        {"@clerk/astro"},
			"vue":          {"@clerk/vue"},
			"nuxt":         {"@clerk/nuxt"},
			"react-native": {"@clerk/clerk-expo"},
		},
		EnvVars: []EnvVar{
			{Name: "CLERK_PUBLISHABLE_KEY", Value: "pk_test_replace_me"},
			{Name: "CLERK_SECRET_KEY", Value: "sk_test_replace_me"},
		},
		SupportedFrameworks: []string{"next", "react", "vite", "remix", "astro", "vue", "nuxt", "react-native"},
		SessionStrategy:     SessionManaged,
	},
	{
		ID:   "supabase-auth",
		Name: "Supabase Auth",
		Packages: map[string][]string{
			"next":   {"@supabase/supabase-js", "@supabase/ssr"},
			Wildcard: {"@supabase/supabase-js"},
		},
		EnvVars: []EnvVar{
			{Name: "SUPABASE_URL", Value: "http://localhost:54321"},
			{Name: "SUPABASE_ANON_KEY", Value: "your-anon-key"},
		},
		SessionStrategy: SessionManaged,
	},
	{
		ID:   "firebase-auth",
		Name: "Firebase Auth",
		Packages: map[string][]string{
			Wildcard: {"firebase"},
		},
		EnvVars: []EnvVar{
			{Name: "FIREBASE_API_KEY", Value: "your-api-key"},
			{Name: "FIREBASE_AUTH_DOMAIN", Value: "your-project.firebaseapp.com"},
			{Name: "FIREBASE_PROJECT_ID", Value: "your-project-id"},
		},
		SessionStrategy: SessionManaged,
	},
	{
		ID:   "auth0",
		Name: "Auth0",
		Packages: map[string][]string{
			"next":   {"@auth0/nextjs-auth0"},
			"vue":    {"@auth0/auth0-vue"},
			Wildcard: {"@auth0/auth0-react"},
		},
		EnvVars: []EnvVar{
			{Name: "AUTH0_SECRET", Secret: true},
			{Name: "AUTH0_BASE_URL", Value: "http://localhost:3000"},
			{Name: "AUTH0_ISSUER_BASE_URL", Value: "https://your-tenant.auth0.com"},
			{Name: "AUTH0_CLIENT_ID", Value: "your-client-id"},
			{Name: "AUTH0_CLIENT_SECRET", Value: "your-client-secret"},
		},
		SupportedFrameworks: []string{"next", "react", "vite", "vue", "remix"},
		SessionStrategy:     SessionJWT,
	},
	{
		ID:   "passport",
		Name: "Passport.js",
		Packages: map[string][]string{
			Wildcard: {"passport", "passport-local", "express-session"},
		},
		EnvVars: []EnvVar{
			{Name: "SESSION_SECRET", Secret: true},
		},
		SupportedFrameworks: []string{"react", "vue", "vite", "angular", "solid", "svelte"},
		SessionStrategy:     SessionDatabase,
		RequiresDatabase:    true,
	},
}

// AuthProviders returns every provider in display order.
func AuthProviders() []AuthProvider {
	return slices.Clone(authProviders)
}

// LookupAuthProvider returns the provider with id.
func LookupAuthProvider(id string) (AuthProvider, bool) {
	i := slices.IndexFunc(authProviders, func(p AuthProvider) bool { return p.ID == id })
	if i < 0 {
		return AuthProvider{}, false
	}
	return authProviders[i], true
}

// AuthProvidersFor returns the providers usable with framework.
func AuthProvidersFor(framework string) []AuthProvider {
	var out []AuthProvider
	for _, p := range authProviders {
		if p.SupportsFramework(framework) {
			out = append(out, p)
		}
	}
	return out
}
