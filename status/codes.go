package status

// Wire values are fixed. Existing values are never reordered or reused.
const (
	Ok                            StatusCode = 0x00000000
	Internal                      StatusCode = 0x00000001
	TimedOut                      StatusCode = 0x00000002
	Denied                        StatusCode = 0x00000003
	NotExists                     StatusCode = 0x00000004
	NotStarted                    StatusCode = 0x00000005
	InProgress                    StatusCode = 0x00000006
	InvalidArgs                   StatusCode = 0x00000007
	InvalidSubscriber             StatusCode = 0x00000008
	WaitingForDependency          StatusCode = 0x00000009
	NoAuth                        StatusCode = 0x0000000A
	ParentalControlRestriction    StatusCode = 0x0000000B
	NoGameAccount                 StatusCode = 0x0000000C
	NotImplemented                StatusCode = 0x0000000D
	ObjectRemoved                 StatusCode = 0x0000000E
	InvalidEntityId               StatusCode = 0x0000000F
	InvalidEntityAccountId        StatusCode = 0x00000010
	InvalidEntityGameAccountId    StatusCode = 0x00000011
	InvalidAgentId                StatusCode = 0x00000013
	InvalidTargetId               StatusCode = 0x00000014
	ModuleNotLoaded               StatusCode = 0x00000015
	ModuleNoEntryPoint            StatusCode = 0x00000016
	ModuleSignatureIncorrect      StatusCode = 0x00000017
	ModuleCreateFailed            StatusCode = 0x00000018
	NoProgram                     StatusCode = 0x00000019
	ApiNotReady                   StatusCode = 0x0000001B
	BadVersion                    StatusCode = 0x0000001C
	AttributeTooManyAttributesSet StatusCode = 0x0000001D
	AttributeMaxSizeExceeded      StatusCode = 0x0000001E
	AttributeQuotaExceeded        StatusCode = 0x0000001F
	ServerPoolServerDisappeared   StatusCode = 0x00000020
	ServerIsPrivate               StatusCode = 0x00000021
	Disabled                      StatusCode = 0x00000022
	ModuleNotFound                StatusCode = 0x00000024
	ServerBusy                    StatusCode = 0x00000025
	NoBattletag                   StatusCode = 0x00000026
	IncompleteProfanityFilters    StatusCode = 0x00000027
	InvalidRegion                 StatusCode = 0x00000028
	ExistsAlready                 StatusCode = 0x00000029
	InvalidServerThumbprint       StatusCode = 0x0000002A
	PhoneLock                     StatusCode = 0x0000002B
	Squelched                     StatusCode = 0x0000002C
	TargetOffline                 StatusCode = 0x0000002D
	BadServer                     StatusCode = 0x0000002E
	NoCookie                      StatusCode = 0x0000002F
	ExpiredCookie                 StatusCode = 0x00000030
	TokenNotFound                 StatusCode = 0x00000031
	GameAccountNoTime             StatusCode = 0x00000032
	GameAccountNoPlan             StatusCode = 0x00000033
	GameAccountBanned             StatusCode = 0x00000034
	GameAccountSuspended          StatusCode = 0x00000035
	GameAccountAlreadySelected    StatusCode = 0x00000036
	GameAccountCancelled          StatusCode = 0x00000037
	GameAccountCreationDisabled   StatusCode = 0x00000038
	GameAccountLocked             StatusCode = 0x00000039

	SessionDuplicate    StatusCode = 0x0000003C
	SessionDisconnected StatusCode = 0x0000003D
	SessionDataChanged  StatusCode = 0x0000003E
	SessionUpdateFailed StatusCode = 0x0000003F
	SessionNotFound     StatusCode = 0x00000040

	AdminKick                  StatusCode = 0x00000046
	UnplannedMaintenance       StatusCode = 0x00000047
	PlannedMaintenance         StatusCode = 0x00000048
	ServiceFailureAccount      StatusCode = 0x00000049
	ServiceFailureSession      StatusCode = 0x0000004A
	ServiceFailureAuth         StatusCode = 0x0000004B
	ServiceFailureRisk         StatusCode = 0x0000004C
	BadProgram                 StatusCode = 0x0000004D
	BadLocale                  StatusCode = 0x0000004E
	BadPlatform                StatusCode = 0x0000004F
	LocaleRestrictedLa         StatusCode = 0x00000051
	LocaleRestrictedRu         StatusCode = 0x00000052
	LocaleRestrictedKo         StatusCode = 0x00000053
	LocaleRestrictedTw         StatusCode = 0x00000054
	LocaleRestricted           StatusCode = 0x00000055
	AccountNeedsMaintenance    StatusCode = 0x00000056
	ModuleApiError             StatusCode = 0x00000057
	ModuleBadCacheHandle       StatusCode = 0x00000058
	ModuleAlreadyLoaded        StatusCode = 0x00000059
	NetworkBlacklisted         StatusCode = 0x0000005A
	EventProcessorSlow         StatusCode = 0x0000005B
	ServerShuttingDown         StatusCode = 0x0000005C
	NetworkNotPrivileged       StatusCode = 0x0000005D
	TooManyOutstandingRequests StatusCode = 0x0000005E
	NoAccountRegistered        StatusCode = 0x0000005F
	BattlenetAccountBanned     StatusCode = 0x00000060

	OkDeprecated       StatusCode = 0x00000064
	ServerInModeZombie StatusCode = 0x00000065

	LogonModuleRequired         StatusCode = 0x000001F4
	LogonModuleNotConfigured    StatusCode = 0x000001F5
	LogonModuleTimeout          StatusCode = 0x000001F6
	LogonAgreementRequired      StatusCode = 0x000001FE
	LogonAgreementNotConfigured StatusCode = 0x000001FF

	LogonInvalidServerProof StatusCode = 0x00000208
	LogonWebVerifyTimeout   StatusCode = 0x00000209
	LogonInvalidAuthToken   StatusCode = 0x0000020A

	ChallengeSmsTooSoon    StatusCode = 0x00000258
	ChallengeSmsThrottled  StatusCode = 0x00000259
	ChallengeSmsTempOutage StatusCode = 0x0000025A
	ChallengeNoChallenge   StatusCode = 0x0000025B
	ChallengeNotPicked     StatusCode = 0x0000025C
	ChallengeAlreadyPicked StatusCode = 0x0000025D
	ChallengeInProgress    StatusCode = 0x0000025E

	ConfigFormatInvalid  StatusCode = 0x000002BC
	ConfigNotFound       StatusCode = 0x000002BD
	ConfigRetrieveFailed StatusCode = 0x000002BE

	NetworkModuleBusy                                    StatusCode = 0x000003E8
	NetworkModuleCantResolveAddress                      StatusCode = 0x000003E9
	NetworkModuleConnectionRefused                       StatusCode = 0x000003EA
	NetworkModuleInterrupted                             StatusCode = 0x000003EB
	NetworkModuleConnectionAborted                       StatusCode = 0x000003EC
	NetworkModuleConnectionReset                         StatusCode = 0x000003ED
	NetworkModuleBadAddress                              StatusCode = 0x000003EE
	NetworkModuleNotReady                                StatusCode = 0x000003EF
	NetworkModuleAlreadyConnected                        StatusCode = 0x000003F0
	NetworkModuleCantCreateSocket                        StatusCode = 0x000003F1
	NetworkModuleNetworkUnreachable                      StatusCode = 0x000003F2
	NetworkModuleSocketPermissionDenied                  StatusCode = 0x000003F3
	NetworkModuleNotInitialized                          StatusCode = 0x000003F4
	NetworkModuleNoSslCertificateForPeer                 StatusCode = 0x000003F5
	NetworkModuleNoSslCommonNameForCertificate           StatusCode = 0x000003F6
	NetworkModuleSslCommonNameDoesNotMatchRemoteEndpoint StatusCode = 0x000003F7
	NetworkModuleSocketClosed                            StatusCode = 0x000003F8
	NetworkModuleSslPeerIsNotRegisteredInCertbundle      StatusCode = 0x000003F9
	NetworkModuleSslInitializeLowFirst                   StatusCode = 0x000003FA
	NetworkModuleSslCertBundleReadError                  StatusCode = 0x000003FB
	NetworkModuleNoCertBundle                            StatusCode = 0x000003FC
	NetworkModuleFailedToDownloadCertBundle              StatusCode = 0x000003FD
	NetworkModuleNotReadyToRead                          StatusCode = 0x000003FE

	NetworkModuleOpensslX509Ok                            StatusCode = 0x000004B0
	NetworkModuleOpensslX509UnableToGetIssuerCert         StatusCode = 0x000004B1
	NetworkModuleOpensslX509UnableToGetCrl                StatusCode = 0x000004B2
	NetworkModuleOpensslX509UnableToDecryptCertSignature  StatusCode = 0x000004B3
	NetworkModuleOpensslX509UnableToDecryptCrlSignature   StatusCode = 0x000004B4
	NetworkModuleOpensslX509UnableToDecodeIssuerPublicKey StatusCode = 0x000004B5
	NetworkModuleOpensslX509CertSignatureFailure          StatusCode = 0x000004B6
	NetworkModuleOpensslX509CrlSignatureFailure           StatusCode = 0x000004B7
	NetworkModuleOpensslX509CertNotYetValid               StatusCode = 0x000004B8
	NetworkModuleOpensslX509CertHasExpired                StatusCode = 0x000004B9
	NetworkModuleOpensslX509CrlNotYetValid                StatusCode = 0x000004BA
	NetworkModuleOpensslX509CrlHasExpired                 StatusCode = 0x000004BB
	NetworkModuleOpensslX509InCertNotBeforeField          StatusCode = 0x000004BC
	NetworkModuleOpensslX509InCertNotAfterField           StatusCode = 0x000004BD
	NetworkModuleOpensslX509InCrlLastUpdateField          StatusCode = 0x000004BE
	NetworkModuleOpensslX509InCrlNextUpdateField          StatusCode = 0x000004BF
	NetworkModuleOpensslX509OutOfMem                      StatusCode = 0x000004C0
	NetworkModuleOpensslX509DepthZeroSelfSignedCert       StatusCode = 0x000004C1
	NetworkModuleOpensslX509SelfSignedCertInChain         StatusCode = 0x000004C2
	NetworkModuleOpensslX509UnableToGetIssuerCertLocally  StatusCode = 0x000004C3
	NetworkModuleOpensslX509UnableToVerifyLeafSignature   StatusCode = 0x000004C4
	NetworkModuleOpensslX509CertChainTooLong              StatusCode = 0x000004C5
	NetworkModuleOpensslX509CertRevoked                   StatusCode = 0x000004C6
	NetworkModuleOpensslX509InvalidCa                     StatusCode = 0x000004C7
	NetworkModuleOpensslX509PathLengthExceeded            StatusCode = 0x000004C8
	NetworkModuleOpensslX509InvalidPurpose                StatusCode = 0x000004C9
	NetworkModuleOpensslX509CertUntrusted                 StatusCode = 0x000004CA
	NetworkModuleOpensslX509CertRejected                  StatusCode = 0x000004CB
	NetworkModuleOpensslX509SubjectIssuerMismatch         StatusCode = 0x000004CC
	NetworkModuleOpensslX509AkidSkidMismatch              StatusCode = 0x000004CD
	NetworkModuleOpensslX509AkidIssuerSerialMismatch      StatusCode = 0x000004CE
	NetworkModuleOpensslX509KeyusageNoCertsign            StatusCode = 0x000004CF
	NetworkModuleOpensslX509ApplicationVerification       StatusCode = 0x000004D0

	NetworkModuleSchannelCannotFindOsVersion             StatusCode = 0x00000514
	NetworkModuleSchannelOsNotSupported                  StatusCode = 0x00000515
	NetworkModuleSchannelLoadlibraryFail                 StatusCode = 0x00000516
	NetworkModuleSchannelCannotFindInterface             StatusCode = 0x00000517
	NetworkModuleSchannelInitFail                        StatusCode = 0x00000518
	NetworkModuleSchannelFunctionCallFail                StatusCode = 0x00000519
	NetworkModuleSchannelX509UnableToGetIssuerCert       StatusCode = 0x00000546
	NetworkModuleSchannelX509TimeInvalid                 StatusCode = 0x00000547
	NetworkModuleSchannelX509SignatureInvalid            StatusCode = 0x00000548
	NetworkModuleSchannelX509UnableToVerifyLeafSignature StatusCode = 0x00000549
	NetworkModuleSchannelX509SelfSignedLeafCertificate   StatusCode = 0x0000054A
	NetworkModuleSchannelX509UnhandledError              StatusCode = 0x0000054B
	NetworkModuleSchannelX509SelfSignedCertInChain       StatusCode = 0x0000054C

	WebsocketHandshake StatusCode = 0x00000578

	NetworkModuleDurangoUnknown                   StatusCode = 0x000005DC
	NetworkModuleDurangoMalformedHostName         StatusCode = 0x000005DD
	NetworkModuleDurangoInvalidConnectionResponse StatusCode = 0x000005DE
	NetworkModuleDurangoInvalidCaCert             StatusCode = 0x000005DF

	RpcWriteFailed              StatusCode = 0x00000BB8
	RpcServiceNotBound          StatusCode = 0x00000BB9
	RpcTooManyRequests          StatusCode = 0x00000BBA
	RpcPeerUnknown              StatusCode = 0x00000BBB
	RpcPeerUnavailable          StatusCode = 0x00000BBC
	RpcPeerDisconnected         StatusCode = 0x00000BBD
	RpcRequestTimedOut          StatusCode = 0x00000BBE
	RpcConnectionTimedOut       StatusCode = 0x00000BBF
	RpcMalformedResponse        StatusCode = 0x00000BC0
	RpcAccessDenied             StatusCode = 0x00000BC1
	RpcInvalidService           StatusCode = 0x00000BC2
	RpcInvalidMethod            StatusCode = 0x00000BC3
	RpcInvalidObject            StatusCode = 0x00000BC4
	RpcMalformedRequest         StatusCode = 0x00000BC5
	RpcQuotaExceeded            StatusCode = 0x00000BC6
	RpcNotImplemented           StatusCode = 0x00000BC7
	RpcServerError              StatusCode = 0x00000BC8
	RpcShutdown                 StatusCode = 0x00000BC9
	RpcDisconnect               StatusCode = 0x00000BCA
	RpcDisconnectIdle           StatusCode = 0x00000BCB
	RpcProtocolError            StatusCode = 0x00000BCC
	RpcNotReady                 StatusCode = 0x00000BCD
	RpcForwardFailed            StatusCode = 0x00000BCE
	RpcEncryptionFailed         StatusCode = 0x00000BCF
	RpcInvalidAddress           StatusCode = 0x00000BD0
	RpcMethodDisabled           StatusCode = 0x00000BD1
	RpcShardNotFound            StatusCode = 0x00000BD2
	RpcInvalidConnectionId      StatusCode = 0x00000BD3
	RpcNotConnected             StatusCode = 0x00000BD4
	RpcInvalidConnectionState   StatusCode = 0x00000BD5
	RpcServiceAlreadyRegistered StatusCode = 0x00000BD6

	PresenceInvalidFieldId         StatusCode = 0x00000FA0
	PresenceNoValidSubscribers     StatusCode = 0x00000FA1
	PresenceAlreadySubscribed      StatusCode = 0x00000FA2
	PresenceConsumerNotFound       StatusCode = 0x00000FA3
	PresenceConsumerIsNull         StatusCode = 0x00000FA4
	PresenceTemporaryOutage        StatusCode = 0x00000FA5
	PresenceTooManySubscriptions   StatusCode = 0x00000FA6
	PresenceSubscriptionCancelled  StatusCode = 0x00000FA7
	PresenceRichPresenceParseError StatusCode = 0x00000FA8
	PresenceRichPresenceXmlError   StatusCode = 0x00000FA9
	PresenceRichPresenceLoadError  StatusCode = 0x00000FAA

	FriendsTooManySentInvitations     StatusCode = 0x00001389
	FriendsTooManyReceivedInvitations StatusCode = 0x0000138A
	FriendsFriendshipAlreadyExists    StatusCode = 0x0000138B
	FriendsFriendshipDoesNotExist     StatusCode = 0x0000138C
	FriendsInvitationAlreadyExists    StatusCode = 0x0000138D
	FriendsInvalidInvitation          StatusCode = 0x0000138E
	FriendsAlreadySubscribed          StatusCode = 0x0000138F
	FriendsAccountBlocked             StatusCode = 0x00001391
	FriendsNotSubscribed              StatusCode = 0x00001392
	FriendsInvalidRoleId              StatusCode = 0x00001393
	FriendsDisabledRoleId             StatusCode = 0x00001394
	FriendsNoteMaxSizeExceeded        StatusCode = 0x00001395
	FriendsUpdateFriendStateFailed    StatusCode = 0x00001396
	FriendsInviteeAtMaxFriends        StatusCode = 0x00001397
	FriendsInviterAtMaxFriends        StatusCode = 0x00001398

	PlatformStorageFileWriteDenied StatusCode = 0x00001770

	WhisperUndeliverable   StatusCode = 0x00001B58
	WhisperMaxSizeExceeded StatusCode = 0x00001B59

	UserManagerAlreadyBlocked         StatusCode = 0x00001F40
	UserManagerNotBlocked             StatusCode = 0x00001F41
	UserManagerCannotBlockSelf        StatusCode = 0x00001F42
	UserManagerAlreadyRegistered      StatusCode = 0x00001F43
	UserManagerNotRegistered          StatusCode = 0x00001F44
	UserManagerTooManyBlockedEntities StatusCode = 0x00001F45
	UserManagerTooManyIds             StatusCode = 0x00001F47
	UserManagerBlockRecordUnavailable StatusCode = 0x00001F4F
	UserManagerBlockEntityFailed      StatusCode = 0x00001F50
	UserManagerUnblockEntityFailed    StatusCode = 0x00001F51
	UserManagerCannotBlockFriend      StatusCode = 0x00001F53

	SocialNetworkDbException             StatusCode = 0x00002328
	SocialNetworkDenialFromProvider      StatusCode = 0x00002329
	SocialNetworkInvalidSnsId            StatusCode = 0x0000232A
	SocialNetworkCantSendToProvider      StatusCode = 0x0000232B
	SocialNetworkExCommFailed            StatusCode = 0x0000232C
	SocialNetworkDisabled                StatusCode = 0x0000232D
	SocialNetworkMissingRequestParam     StatusCode = 0x0000232E
	SocialNetworkUnsupportedOauthVersion StatusCode = 0x0000232F

	ChannelFull                                 StatusCode = 0x00002710
	ChannelNoChannel                            StatusCode = 0x00002711
	ChannelNotMember                            StatusCode = 0x00002712
	ChannelAlreadyMember                        StatusCode = 0x00002713
	ChannelNoSuchMember                         StatusCode = 0x00002714
	ChannelInvalidChannelId                     StatusCode = 0x00002716
	ChannelNoSuchInvitation                     StatusCode = 0x00002718
	ChannelTooManyInvitations                   StatusCode = 0x00002719
	ChannelInvitationAlreadyExists              StatusCode = 0x0000271A
	ChannelInvalidChannelSize                   StatusCode = 0x0000271B
	ChannelInvalidRoleId                        StatusCode = 0x0000271C
	ChannelRoleNotAssignable                    StatusCode = 0x0000271D
	ChannelInsufficientPrivileges               StatusCode = 0x0000271E
	ChannelInsufficientPrivacyLevel             StatusCode = 0x0000271F
	ChannelInvalidPrivacyLevel                  StatusCode = 0x00002720
	ChannelTooManyChannelsJoined                StatusCode = 0x00002721
	ChannelInvitationAlreadySubscribed          StatusCode = 0x00002722
	ChannelInvalidChannelDelegate               StatusCode = 0x00002723
	ChannelSlotAlreadyReserved                  StatusCode = 0x00002724
	ChannelSlotNotReserved                      StatusCode = 0x00002725
	ChannelNoReservedSlotsAvailable             StatusCode = 0x00002726
	ChannelInvalidRoleSet                       StatusCode = 0x00002727
	ChannelRequireFriendValidation              StatusCode = 0x00002728
	ChannelMemberOffline                        StatusCode = 0x00002729
	ChannelReceivedTooManyInvitations           StatusCode = 0x0000272A
	ChannelInvitationInvalidGameAccountSelected StatusCode = 0x0000272B
	ChannelUnreachable                          StatusCode = 0x0000272C
	ChannelInvitationNotSubscribed              StatusCode = 0x0000272D
	ChannelInvalidMessageSize                   StatusCode = 0x0000272E
	ChannelMaxMessageSizeExceeded               StatusCode = 0x0000272F
	ChannelConfigNotFound                       StatusCode = 0x00002730
	ChannelInvalidChannelType                   StatusCode = 0x00002731

	LocalStorageFileOpenError              StatusCode = 0x00002AF8
	LocalStorageFileCreateError            StatusCode = 0x00002AF9
	LocalStorageFileReadError              StatusCode = 0x00002AFA
	LocalStorageFileWriteError             StatusCode = 0x00002AFB
	LocalStorageFileDeleteError            StatusCode = 0x00002AFC
	LocalStorageFileCopyError              StatusCode = 0x00002AFD
	LocalStorageFileDecompressError        StatusCode = 0x00002AFE
	LocalStorageFileHashMismatch           StatusCode = 0x00002AFF
	LocalStorageFileUsageMismatch          StatusCode = 0x00002B00
	LocalStorageDatabaseInitError          StatusCode = 0x00002B01
	LocalStorageDatabaseNeedsRebuild       StatusCode = 0x00002B02
	LocalStorageDatabaseInsertError        StatusCode = 0x00002B03
	LocalStorageDatabaseLookupError        StatusCode = 0x00002B04
	LocalStorageDatabaseUpdateError        StatusCode = 0x00002B05
	LocalStorageDatabaseDeleteError        StatusCode = 0x00002B06
	LocalStorageDatabaseShrinkError        StatusCode = 0x00002B07
	LocalStorageCacheCrawlError            StatusCode = 0x00002B08
	LocalStorageDatabaseIndexTriggerError  StatusCode = 0x00002B09
	LocalStorageDatabaseRebuildInProgress  StatusCode = 0x00002B0A
	LocalStorageOkButNotInCache            StatusCode = 0x00002B0B
	LocalStorageDatabaseRebuildInterrupted StatusCode = 0x00002B0D
	LocalStorageDatabaseNotInitialized     StatusCode = 0x00002B0E
	LocalStorageDirectoryCreateError       StatusCode = 0x00002B0F
	LocalStorageFilekeyNotFound            StatusCode = 0x00002B10
	LocalStorageNotAvailableOnServer       StatusCode = 0x00002B11

	RegistryCreateKeyError  StatusCode = 0x00002EE0
	RegistryOpenKeyError    StatusCode = 0x00002EE1
	RegistryReadError       StatusCode = 0x00002EE2
	RegistryWriteError      StatusCode = 0x00002EE3
	RegistryTypeError       StatusCode = 0x00002EE4
	RegistryDeleteError     StatusCode = 0x00002EE5
	RegistryEncryptError    StatusCode = 0x00002EE6
	RegistryDecryptError    StatusCode = 0x00002EE7
	RegistryKeySizeError    StatusCode = 0x00002EE8
	RegistryValueSizeError  StatusCode = 0x00002EE9
	RegistryNotFound        StatusCode = 0x00002EEB
	RegistryMalformedString StatusCode = 0x00002EEC

	InterfaceAlreadyConnected             StatusCode = 0x000032C8
	InterfaceNotReady                     StatusCode = 0x000032C9
	InterfaceOptionKeyTooLarge            StatusCode = 0x000032CA
	InterfaceOptionValueTooLarge          StatusCode = 0x000032CB
	InterfaceOptionKeyInvalidUtf8String   StatusCode = 0x000032CC
	InterfaceOptionValueInvalidUtf8String StatusCode = 0x000032CD

	HttpCouldntResolve         StatusCode = 0x000036B0
	HttpCouldntConnect         StatusCode = 0x000036B1
	HttpTimeout                StatusCode = 0x000036B2
	HttpFailed                 StatusCode = 0x000036B3
	HttpMalformedUrl           StatusCode = 0x000036B4
	HttpDownloadAborted        StatusCode = 0x000036B5
	HttpCouldntWriteFile       StatusCode = 0x000036B6
	HttpTooManyRedirects       StatusCode = 0x000036B7
	HttpCouldntOpenFile        StatusCode = 0x000036B8
	HttpCouldntCreateFile      StatusCode = 0x000036B9
	HttpCouldntReadFile        StatusCode = 0x000036BA
	HttpCouldntRenameFile      StatusCode = 0x000036BB
	HttpCouldntCreateDirectory StatusCode = 0x000036BC
	HttpCurlIsNotReady         StatusCode = 0x000036BD
	HttpCancelled              StatusCode = 0x000036BE

	HttpFileNotFound StatusCode = 0x00003844

	AccountMissingConfig             StatusCode = 0x00004650
	AccountDataNotFound              StatusCode = 0x00004651
	AccountAlreadySubscribed         StatusCode = 0x00004652
	AccountNotSubscribed             StatusCode = 0x00004653
	AccountFailedToParseTimezoneData StatusCode = 0x00004654
	AccountLoadFailed                StatusCode = 0x00004655
	AccountLoadCancelled             StatusCode = 0x00004656
	AccountDatabaseInvalidateFailed  StatusCode = 0x00004657
	AccountCacheInvalidateFailed     StatusCode = 0x00004658
	AccountSubscriptionPending       StatusCode = 0x00004659
	AccountUnknownRegion             StatusCode = 0x0000465A
	AccountDataFailedToParse         StatusCode = 0x0000465B
	AccountUnderage                  StatusCode = 0x0000465C
	AccountIdentityCheckPending      StatusCode = 0x0000465D
	AccountIdentityUnverified        StatusCode = 0x0000465E

	DatabaseBindingCountMismatch     StatusCode = 0x00004A38
	DatabaseBindingParseFail         StatusCode = 0x00004A39
	DatabaseResultsetColumnsMismatch StatusCode = 0x00004A3A
	DatabaseDeadlock                 StatusCode = 0x00004A3B
	DatabaseDuplicateKey             StatusCode = 0x00004A3C
	DatabaseCannotConnect            StatusCode = 0x00004A3D
	DatabaseStatementFailed          StatusCode = 0x00004A3E
	DatabaseTransactionNotStarted    StatusCode = 0x00004A3F
	DatabaseTransactionNotEnded      StatusCode = 0x00004A40
	DatabaseTransactionLeak          StatusCode = 0x00004A41
	DatabaseTransactionStateBad      StatusCode = 0x00004A42
	DatabaseServerGone               StatusCode = 0x00004A43
	DatabaseQueryTimeout             StatusCode = 0x00004A44
	DatabaseBindingNotNullable       StatusCode = 0x00004A9C
	DatabaseBindingInvalidInteger    StatusCode = 0x00004A9D
	DatabaseBindingInvalidFloat      StatusCode = 0x00004A9E
	DatabaseBindingInvalidTemporal   StatusCode = 0x00004A9F
	DatabaseBindingInvalidProtobuf   StatusCode = 0x00004AA0

	PartyInvalidPartyId             StatusCode = 0x00004E20
	PartyAlreadyInParty             StatusCode = 0x00004E21
	PartyNotInParty                 StatusCode = 0x00004E22
	PartyInvitationUndeliverable    StatusCode = 0x00004E23
	PartyInvitationAlreadyExists    StatusCode = 0x00004E24
	PartyTooManyPartyInvitations    StatusCode = 0x00004E25
	PartyTooManyReceivedInvitations StatusCode = 0x00004E26
	PartyNoSuchType                 StatusCode = 0x00004E27

	GamesNoSuchFactory     StatusCode = 0x000055F0
	GamesNoSuchGame        StatusCode = 0x000055F1
	GamesNoSuchRequest     StatusCode = 0x000055F2
	GamesNoSuchPartyMember StatusCode = 0x000055F3

	ResourcesOffline StatusCode = 0x000059D8

	GameServerCreateGameRefused             StatusCode = 0x00005DC0
	GameServerAddPlayersRefused             StatusCode = 0x00005DC1
	GameServerRemovePlayersRefused          StatusCode = 0x00005DC2
	GameServerFinishGameRefused             StatusCode = 0x00005DC3
	GameServerNoSuchGame                    StatusCode = 0x00005DC4
	GameServerNoSuchPlayer                  StatusCode = 0x00005DC5
	GameServerCreateGameRefusedTransient    StatusCode = 0x00005DF2
	GameServerAddPlayersRefusedTransient    StatusCode = 0x00005DF3
	GameServerRemovePlayersRefusedTransient StatusCode = 0x00005DF4
	GameServerFinishGameRefusedTransient    StatusCode = 0x00005DF5
	GameServerCreateGameRefusedBusy         StatusCode = 0x00005E24
	GameServerAddPlayersRefusedBusy         StatusCode = 0x00005E25
	GameServerRemovePlayersRefusedBusy      StatusCode = 0x00005E26
	GameServerFinishGameRefusedBusy         StatusCode = 0x00005E27

	GameMasterInvalidFactory                StatusCode = 0x000061A8
	GameMasterInvalidGame                   StatusCode = 0x000061A9
	GameMasterGameFull                      StatusCode = 0x000061AA
	GameMasterRegisterFailed                StatusCode = 0x000061AB
	GameMasterNoGameServer                  StatusCode = 0x000061AC
	GameMasterNoUtilityServer               StatusCode = 0x000061AD
	GameMasterNoGameVersion                 StatusCode = 0x000061AE
	GameMasterGameJoinFailed                StatusCode = 0x000061AF
	GameMasterAlreadyRegistered             StatusCode = 0x000061B0
	GameMasterNoFactory                     StatusCode = 0x000061B1
	GameMasterMultipleGameVersions          StatusCode = 0x000061B2
	GameMasterInvalidPlayer                 StatusCode = 0x000061B3
	GameMasterInvalidGameRequest            StatusCode = 0x000061B4
	GameMasterInsufficientPrivileges        StatusCode = 0x000061B5
	GameMasterAlreadyInGame                 StatusCode = 0x000061B6
	GameMasterInvalidGameServerResponse     StatusCode = 0x000061B7
	GameMasterGameAccountLookupFailed       StatusCode = 0x000061B8
	GameMasterGameEntryCancelled            StatusCode = 0x000061B9
	GameMasterGameEntryAbortedClientDropped StatusCode = 0x000061BA
	GameMasterGameEntryAbortedByService     StatusCode = 0x000061BB
	GameMasterNoAvailableCapacity           StatusCode = 0x000061BC
	GameMasterInvalidTeamId                 StatusCode = 0x000061BD
	GameMasterCreationInProgress            StatusCode = 0x000061BE

	NotificationInvalidClientId         StatusCode = 0x00006590
	NotificationDuplicateName           StatusCode = 0x00006591
	NotificationNameNotFound            StatusCode = 0x00006592
	NotificationInvalidServer           StatusCode = 0x00006593
	NotificationQuotaExceeded           StatusCode = 0x00006594
	NotificationInvalidNotificationType StatusCode = 0x00006595
	NotificationUndeliverable           StatusCode = 0x00006596
	NotificationUndeliverableTemporary  StatusCode = 0x00006597

	AchievementsNothingToUpdate            StatusCode = 0x00006D60
	AchievementsInvalidParams              StatusCode = 0x00006D61
	AchievementsNotRegistered              StatusCode = 0x00006D62
	AchievementsNotReady                   StatusCode = 0x00006D63
	AchievementsFailedToParseStaticData    StatusCode = 0x00006D64
	AchievementsUnknownId                  StatusCode = 0x00006D65
	AchievementsMissingSnapshot            StatusCode = 0x00006D66
	AchievementsAlreadyRegistered          StatusCode = 0x00006D67
	AchievementsTooManyRegistrations       StatusCode = 0x00006D68
	AchievementsAlreadyInProgress          StatusCode = 0x00006D69
	AchievementsTemporaryOutage            StatusCode = 0x00006D6A
	AchievementsInvalidProgramid           StatusCode = 0x00006D6B
	AchievementsMissingRecord              StatusCode = 0x00006D6C
	AchievementsRegistrationPending        StatusCode = 0x00006D6D
	AchievementsEntityIdNotFound           StatusCode = 0x00006D6E
	AchievementsAchievementIdNotFound      StatusCode = 0x00006D6F
	AchievementsCriteriaIdNotFound         StatusCode = 0x00006D70
	AchievementsStaticDataMismatch         StatusCode = 0x00006D71
	AchievementsWrongThread                StatusCode = 0x00006D72
	AchievementsCallbackIsNull             StatusCode = 0x00006D73
	AchievementsAutoRegisterPending        StatusCode = 0x00006D74
	AchievementsNotInitialized             StatusCode = 0x00006D75
	AchievementsAchievementIdAlreadyExists StatusCode = 0x00006D76
	AchievementsFailedToDownloadStaticData StatusCode = 0x00006D77
	AchievementsStaticDataNotFound         StatusCode = 0x00006D78

	GameUtilityServerVariableRequestRefused                 StatusCode = 0x000084D1
	GameUtilityServerWrongNumberOfVariablesReturned         StatusCode = 0x000084D2
	GameUtilityServerClientRequestRefused                   StatusCode = 0x000084D3
	GameUtilityServerPresenceChannelCreatedRefused          StatusCode = 0x000084D4
	GameUtilityServerVariableRequestRefusedTransient        StatusCode = 0x00008502
	GameUtilityServerClientRequestRefusedTransient          StatusCode = 0x00008503
	GameUtilityServerPresenceChannelCreatedRefusedTransient StatusCode = 0x00008504
	GameUtilityServerServerRequestRefusedTransient          StatusCode = 0x00008505
	GameUtilityServerVariableRequestRefusedBusy             StatusCode = 0x00008534
	GameUtilityServerClientRequestRefusedBusy               StatusCode = 0x00008535
	GameUtilityServerPresenceChannelCreatedRefusedBusy      StatusCode = 0x00008536
	GameUtilityServerServerRequestRefusedBusy               StatusCode = 0x00008537
	GameUtilityServerNoServer                               StatusCode = 0x00008598

	IdentityInsufficientData StatusCode = 0x0000A028
	IdentityTooManyResults   StatusCode = 0x0000A029
	IdentityBadId            StatusCode = 0x0000A02A
	IdentityNoAccountBlob    StatusCode = 0x0000A02B

	RiskChallengeAction   StatusCode = 0x0000A410
	RiskDelayAction       StatusCode = 0x0000A411
	RiskThrottleAction    StatusCode = 0x0000A412
	RiskAccountLocked     StatusCode = 0x0000A413
	RiskCsDenied          StatusCode = 0x0000A414
	RiskDisconnectAccount StatusCode = 0x0000A415
	RiskCheckSkipped      StatusCode = 0x0000A416

	ReportUnavailable            StatusCode = 0x0000AFC8
	ReportTooLarge               StatusCode = 0x0000AFC9
	ReportUnknownType            StatusCode = 0x0000AFCA
	ReportAttributeInvalid       StatusCode = 0x0000AFCB
	ReportAttributeQuotaExceeded StatusCode = 0x0000AFCC
	ReportUnconfirmed            StatusCode = 0x0000AFCD
	ReportNotConnected           StatusCode = 0x0000AFCE
	ReportRejected               StatusCode = 0x0000AFCF
	ReportTooManyRequests        StatusCode = 0x0000AFD0

	AccountAlreadyRegisterd    StatusCode = 0x0000BB80
	AccountNotRegistered       StatusCode = 0x0000BB81
	AccountRegistrationPending StatusCode = 0x0000BB82

	MemcachedClientNoError          StatusCode = 0x00010000
	MemcachedClientKeyNotFound      StatusCode = 0x00010001
	MemcachedKeyExists              StatusCode = 0x00010002
	MemcachedValueToLarge           StatusCode = 0x00010003
	MemcachedInvalidArgs            StatusCode = 0x00010004
	MemcachedItemNotStored          StatusCode = 0x00010005
	MemcachedNonNumericValue        StatusCode = 0x00010006
	MemcachedWrongServer            StatusCode = 0x00010007
	MemcachedAuthenticationError    StatusCode = 0x00010008
	MemcachedAuthenticationContinue StatusCode = 0x00010009
	MemcachedUnknownCommand         StatusCode = 0x0001000A
	MemcachedOutOfMemory            StatusCode = 0x0001000B
	MemcachedNotSupported           StatusCode = 0x0001000C
	MemcachedInternalError          StatusCode = 0x0001000D
	MemcachedTemporaryFailure       StatusCode = 0x0001000E

	MemcachedClientAlreadyConnected StatusCode = 0x000186A0
	MemcachedClientBadConfig        StatusCode = 0x000186A1
	MemcachedClientNotConnected     StatusCode = 0x000186A2
	MemcachedClientTimeout          StatusCode = 0x000186A3
	MemcachedClientAborted          StatusCode = 0x000186A4

	UtilServerFailedToSerialize               StatusCode = 0x80000064
	UtilServerDisconnectedFromBattlenet       StatusCode = 0x80000065
	UtilServerTimedOut                        StatusCode = 0x80000066
	UtilServerNoMeteringData                  StatusCode = 0x80000067
	UtilServerFailPermissionCheck             StatusCode = 0x80000068
	UtilServerUnknownRealm                    StatusCode = 0x80000069
	UtilServerMissingSessionKey               StatusCode = 0x8000006A
	UtilServerMissingVirtualRealm             StatusCode = 0x8000006B
	UtilServerInvalidSessionKey               StatusCode = 0x8000006C
	UtilServerMissingRealmList                StatusCode = 0x8000006D
	UtilServerInvalidIdentityArgs             StatusCode = 0x8000006E
	UtilServerSessionObjectMissing            StatusCode = 0x8000006F
	UtilServerInvalidBnetSession              StatusCode = 0x80000070
	UtilServerInvalidVirtualRealm             StatusCode = 0x80000071
	UtilServerInvalidClientAddress            StatusCode = 0x80000072
	UtilServerFailedToSerializeResponse       StatusCode = 0x80000073
	UtilServerUnknownRequest                  StatusCode = 0x80000074
	UtilServerUnableToGenerateJoinTicket      StatusCode = 0x80000075
	UtilServerUnableToGenerateRealmListTicket StatusCode = 0x80000076
	UtilServerAccountDenied                   StatusCode = 0x80000077
	UtilServerInvalidWowAccount               StatusCode = 0x80000078
	UtilServerUnableToStoreSession            StatusCode = 0x80000079
	UtilServerSessionAlreadyCreated           StatusCode = 0x8000007A

	UserServerFailedToSerialize              StatusCode = 0x800000C8
	UserServerDisconnectedFromUtil           StatusCode = 0x800000C9
	UserServerSessionDuplicate               StatusCode = 0x800000CA
	UserServerFailedToDisableBilling         StatusCode = 0x800000CB
	UserServerPlayerDisconnected             StatusCode = 0x800000CC
	UserServerFailedToParseAccountState      StatusCode = 0x800000CD
	UserServerAccountLoadCancelled           StatusCode = 0x800000CE
	UserServerBadPlatform                    StatusCode = 0x800000CF
	UserServerBadVirtualRealm                StatusCode = 0x800000D0
	UserServerLocaleRestricted               StatusCode = 0x800000D1
	UserServerMissingPropass                 StatusCode = 0x800000D2
	UserServerBadWowAccount                  StatusCode = 0x800000D3
	UserServerBadBnetAccount                 StatusCode = 0x800000D4
	UserServerFailedToParseGameAccountState  StatusCode = 0x800000D5
	UserServerFailedToParseGameTimeRemaining StatusCode = 0x800000D6
	UserServerFailedToParseGameSessionInfo   StatusCode = 0x800000D7
	UserServerAccountStatePoorlyFormed       StatusCode = 0x800000D8
	UserServerGameAccountStatePoorlyFormed   StatusCode = 0x800000D9
	UserServerGameTimeRemainingPoorlyFormed  StatusCode = 0x800000DA
	UserServerGameSessionInfoPoorlyFormed    StatusCode = 0x800000DB
	UserServerBadSessionTrackerState         StatusCode = 0x800000DC
	UserServerFailedToParseCaisInfo          StatusCode = 0x800000DD
	UserServerGameSessionDisconnected        StatusCode = 0x800000DE
	UserServerVersionMismatch                StatusCode = 0x800000DF
	UserServerAccountSuspended               StatusCode = 0x800000E0
	UserServerNotPermittedOnRealm            StatusCode = 0x800000E1
	UserServerLoginFailedConnect             StatusCode = 0x800000E2

	WowServicesTimedOut                       StatusCode = 0x8000012C
	WowServicesInvalidRealmListTicket         StatusCode = 0x8000012D
	WowServicesInvalidJoinTicket              StatusCode = 0x8000012E
	WowServicesInvalidServerAddresses         StatusCode = 0x8000012F
	WowServicesInvalidSecretBlob              StatusCode = 0x80000130
	WowServicesNoRealmJoinIpFound             StatusCode = 0x80000131
	WowServicesDeniedRealmListTicket          StatusCode = 0x80000132
	WowServicesMissingGameAccount             StatusCode = 0x80000133
	WowServicesLogonInvalidAuthToken          StatusCode = 0x80000134
	WowServicesNoAvailableRealms              StatusCode = 0x80000135
	WowServicesFailedToParseDispatch          StatusCode = 0x80000136
	WowServicesMissingMeteringFile            StatusCode = 0x80000137
	WowServicesLoginInvalidContentType        StatusCode = 0x80000138
	WowServicesLoginUnableToDecode            StatusCode = 0x80000139
	WowServicesLoginPostError                 StatusCode = 0x8000013A
	WowServicesAuthenticatorParseFailed       StatusCode = 0x8000013B
	WowServicesLegalParseFailed               StatusCode = 0x8000013C
	WowServicesLoginAuthenticationParseFailed StatusCode = 0x8000013D
	WowSerivcesUserMustAcceptLegal            StatusCode = 0x8000013E
	WowServicesDisconnected                   StatusCode = 0x8000013F
	WowServicesNoHandlerForDispatch           StatusCode = 0x80000140
	WowServicesPreDispatchHandlerFailed       StatusCode = 0x80000141
	WowServicesCriticalStreamingError         StatusCode = 0x80000142
	WowServicesWorldLoadError                 StatusCode = 0x80000143
	WowServicesLoginFailed                    StatusCode = 0x80000144
	WowServicesLoginFailedOnChallenge         StatusCode = 0x80000145
	WowServicesNoPrepaidTime                  StatusCode = 0x80000146
	WowServicesSubscriptionExpired            StatusCode = 0x80000147
	WowServicesCantConnect                    StatusCode = 0x80000148
)
