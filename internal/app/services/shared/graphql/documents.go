package graphql

const (
	OperationLogin          = "Login"
	OperationLoginDoctor    = "LoginDoctor"
	OperationSignup         = "Signup"
	OperationSignupDoctor   = "SignupDoctor"
	OperationForgotPassword = "ForgotPassword"
	OperationResetPassword  = "ResetPassword"
	OperationUpdateMember   = "UpdateMember"
	OperationGetDoctors     = "GetDoctors"
)

const loginMutation = `mutation Login($input: LoginInput!) {
  login(input: $input) {
    _id
    accessToken
  }
}`

const loginDoctorMutation = `mutation LoginDoctor($input: DoctorLoginInput!) {
  loginDoctor(input: $input) {
    _id
    accessToken
  }
}`

const signupMutation = `mutation Signup($input: MemberInput!) {
  signup(input: $input) {
    _id
    accessToken
  }
}`

const signupDoctorMutation = `mutation SignupDoctor($input: DoctorInput!) {
  signupDoctor(input: $input) {
    _id
    accessToken
  }
}`

const forgotPasswordMutation = `mutation ForgotPassword($input: ForgotPasswordInput!) {
  forgotPassword(input: $input)
}`

const resetPasswordMutation = `mutation ResetPassword($input: ResetPasswordInput!) {
  resetPassword(input: $input)
}`

const updateMemberMutation = `mutation UpdateMember($input: MemberUpdate!) {
  updateMember(input: $input) {
    _id
    accessToken
  }
}`

const getDoctorsQuery = `query GetDoctors($input: DoctorsInquiry!) {
  getDoctors(input: $input) {
    list {
      _id
      memberType
      doctorStatus
      doctorNick
      doctorPhone
      doctorFullName
      doctorImage
      doctorGender
      doctorDesc
      licenseNumber
      specialization
      consultationType
      clinicName
      clinicAddress
      doctorFees
      experience
      languages
      workingHours {
        day
        start
        end
      }
      doctorViews
      doctorLikes
      doctorRank
      createdAt
      updatedAt
    }
    metaCounter {
      total
    }
  }
}`
