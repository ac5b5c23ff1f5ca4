package middleware

import (
	"context"
	"fmt"
	"log"

	"connectrpc.com/connect"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/auth"
	"github.com/aaalawyers/trainingportal/pkg/api/portal/v1/portalv1connect"
)

type permission struct {
	obj    string
	action string
}

// procedurePermissions lists every callable procedure. Anything missing is
// denied.
var procedurePermissions = map[string]permission{
	portalv1connect.PortalServiceGetAllCoursesProcedure:      {auth.ObjectContent, auth.ActionRead},
	portalv1connect.PortalServiceGetCourseProcedure:          {auth.ObjectContent, auth.ActionRead},
	portalv1connect.PortalServiceGetLessonsByCourseProcedure: {auth.ObjectContent, auth.ActionRead},
	portalv1connect.PortalServiceGetLessonProcedure:          {auth.ObjectContent, auth.ActionRead},

	portalv1connect.PortalServiceSaveCourseProcedure:       {auth.ObjectContent, auth.ActionWrite},
	portalv1connect.PortalServiceUpdateCourseProcedure:     {auth.ObjectContent, auth.ActionWrite},
	portalv1connect.PortalServiceSaveLessonProcedure:       {auth.ObjectContent, auth.ActionWrite},
	portalv1connect.PortalServiceUpdateLessonProcedure:     {auth.ObjectContent, auth.ActionWrite},
	portalv1connect.PortalServiceSetContentStatusProcedure: {auth.ObjectContent, auth.ActionWrite},
	portalv1connect.PortalServiceImportPdfProcedure:        {auth.ObjectContent, auth.ActionWrite},

	portalv1connect.PortalServiceEnrollInCourseProcedure:      {auth.ObjectProgress, auth.ActionWrite},
	portalv1connect.PortalServiceMarkLessonCompletedProcedure: {auth.ObjectProgress, auth.ActionWrite},
	portalv1connect.PortalServiceGetTraineeProgressProcedure:  {auth.ObjectProgress, auth.ActionRead},

	portalv1connect.PortalServiceGetCallerUserProfileProcedure:  {auth.ObjectProfile, auth.ActionRead},
	portalv1connect.PortalServiceGetUserProfileProcedure:        {auth.ObjectProfile, auth.ActionRead},
	portalv1connect.PortalServiceSaveCallerUserProfileProcedure: {auth.ObjectProfile, auth.ActionWrite},

	portalv1connect.PortalServiceGetCallerUserRoleProcedure:    {auth.ObjectRole, auth.ActionRead},
	portalv1connect.PortalServiceIsCallerAdminProcedure:        {auth.ObjectRole, auth.ActionRead},
	portalv1connect.PortalServiceAssignCallerUserRoleProcedure: {auth.ObjectRole, auth.ActionWrite},
}

// NewAuthzInterceptor enforces the Casbin policy for the caller's role.
// Anonymous callers that are refused get Unauthenticated so clients can
// prompt for login; known callers get PermissionDenied.
func NewAuthzInterceptor(deps AuthzDependencies) connect.UnaryInterceptorFunc {
	return connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			procedure := req.Spec().Procedure
			perm, ok := procedurePermissions[procedure]
			if !ok {
				return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("access to procedure %s is denied by default policy", procedure))
			}
			if deps.Enforcer == nil || deps.Roles == nil {
				return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("authorization enforcer not initialized"))
			}

			principal, authenticated := auth.PrincipalFromContext(ctx)
			role, err := deps.Roles.RoleOf(ctx, principal.Identity)
			if err != nil {
				log.Printf("error resolving role for %q: %v", principal.Identity, err)
				return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("resolve role: %w", err))
			}

			allowed, err := deps.Enforcer.Enforce(role, perm.obj, perm.action)
			if err != nil {
				log.Printf("error enforce query for %s: %v", principal.Identity, err)
				return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("authorization enforcement error: %w", err))
			}

			if !allowed {
				if !authenticated {
					return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("sign in to call %s", procedure))
				}
				return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("role '%s' may not %s %s", role, perm.action, perm.obj))
			}

			return next(ctx, req)
		})
	})
}
