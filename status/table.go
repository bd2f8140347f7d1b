package status

var table = []struct {
	code StatusCode
	name string
}{
	{Ok, "Ok"},
	{Internal, "Internal"},
	{TimedOut, "TimedOut"},
	{Denied, "Denied"},
	{NotExists, "NotExists"},
	{NotStarted, "NotStarted"},
	{InProgress, "InProgress"},
	{InvalidArgs, "InvalidArgs"},
	{InvalidSubscriber, "InvalidSubscriber"},
	{WaitingForDependency, "WaitingForDependency"},
	{NoAuth, "NoAuth"},
	{ParentalControlRestriction, "ParentalControlRestriction"},
	{NoGameAccount, "NoGameAccount"},
	{NotImplemented, "NotImplemented"},
	{ObjectRemoved, "ObjectRemoved"},
	{InvalidEntityId, "InvalidEntityId"},
	{InvalidEntityAccountId, "InvalidEntityAccountId"},
	{InvalidEntityGameAccountId, "InvalidEntityGameAccountId"},
	{InvalidAgentId, "InvalidAgentId"},
	{InvalidTargetId, "InvalidTargetId"},
	{ModuleNotLoaded, "ModuleNotLoaded"},
	{ModuleNoEntryPoint, "ModuleNoEntryPoint"},
	{ModuleSignatureIncorrect, "ModuleSignatureIncorrect"},
	{ModuleCreateFailed, "ModuleCreateFailed"},
	{NoProgram, "NoProgram"},
	{ApiNotReady, "ApiNotReady"},
	{BadVersion, "BadVersion"},
	{AttributeTooManyAttributesSet, "AttributeTooManyAttributesSet"},
	{AttributeMaxSizeExceeded, "AttributeMaxSizeExceeded"},
	{AttributeQuotaExceeded, "AttributeQuotaExceeded"},
	{ServerPoolServerDisappeared, "ServerPoolServerDisappeared"},
	{ServerIsPrivate, "ServerIsPrivate"},
	{Disabled, "Disabled"},
	{ModuleNotFound, "ModuleNotFound"},
	{ServerBusy, "ServerBusy"},
	{NoBattletag, "NoBattletag"},
	{IncompleteProfanityFilters, "IncompleteProfanityFilters"},
	{InvalidRegion, "InvalidRegion"},
	{ExistsAlready, "ExistsAlready"},
	{InvalidServerThumbprint, "InvalidServerThumbprint"},
	{PhoneLock, "PhoneLock"},
	{Squelched, "Squelched"},
	{TargetOffline, "TargetOffline"},
	{BadServer, "BadServer"},
	{NoCookie, "NoCookie"},
	{ExpiredCookie, "ExpiredCookie"},
	{TokenNotFound, "TokenNotFound"},
	{GameAccountNoTime, "GameAccountNoTime"},
	{GameAccountNoPlan, "GameAccountNoPlan"},
	{GameAccountBanned, "GameAccountBanned"},
	{GameAccountSuspended, "GameAccountSuspended"},
	{GameAccountAlreadySelected, "GameAccountAlreadySelected"},
	{GameAccountCancelled, "GameAccountCancelled"},
	{GameAccountCreationDisabled, "GameAccountCreationDisabled"},
	{GameAccountLocked, "GameAccountLocked"},
	{SessionDuplicate, "SessionDuplicate"},
	{SessionDisconnected, "SessionDisconnected"},
	{SessionDataChanged, "SessionDataChanged"},
	{SessionUpdateFailed, "SessionUpdateFailed"},
	{SessionNotFound, "SessionNotFound"},
	{AdminKick, "AdminKick"},
	{UnplannedMaintenance, "UnplannedMaintenance"},
	{PlannedMaintenance, "PlannedMaintenance"},
	{ServiceFailureAccount, "ServiceFailureAccount"},
	{ServiceFailureSession, "ServiceFailureSession"},
	{ServiceFailureAuth, "ServiceFailureAuth"},
	{ServiceFailureRisk, "ServiceFailureRisk"},
	{BadProgram, "BadProgram"},
	{BadLocale, "BadLocale"},
	{BadPlatform, "BadPlatform"},
	{LocaleRestrictedLa, "LocaleRestrictedLa"},
	{LocaleRestrictedRu, "LocaleRestrictedRu"},
	{LocaleRestrictedKo, "LocaleRestrictedKo"},
	{LocaleRestrictedTw, "LocaleRestrictedTw"},
	{LocaleRestricted, "LocaleRestricted"},
	{AccountNeedsMaintenance, "AccountNeedsMaintenance"},
	{ModuleApiError, "ModuleApiError"},
	{ModuleBadCacheHandle, "ModuleBadCacheHandle"},
	{ModuleAlreadyLoaded, "ModuleAlreadyLoaded"},
	{NetworkBlacklisted, "NetworkBlacklisted"},
	{EventProcessorSlow, "EventProcessorSlow"},
	{ServerShuttingDown, "ServerShuttingDown"},
	{NetworkNotPrivileged, "NetworkNotPrivileged"},
	{TooManyOutstandingRequests, "TooManyOutstandingRequests"},
	{NoAccountRegistered, "NoAccountRegistered"},
	{BattlenetAccountBanned, "BattlenetAccountBanned"},
	{OkDeprecated, "OkDeprecated"},
	{ServerInModeZombie, "ServerInModeZombie"},
	{LogonModuleRequired, "LogonModuleRequired"},
	{LogonModuleNotConfigured, "LogonModuleNotConfigured"},
	{LogonModuleTimeout, "LogonModuleTimeout"},
	{LogonAgreementRequired, "LogonAgreementRequired"},
	{LogonAgreementNotConfigured, "LogonAgreementNotConfigured"},
	{LogonInvalidServerProof, "LogonInvalidServerProof"},
	{LogonWebVerifyTimeout, "LogonWebVerifyTimeout"},
	{LogonInvalidAuthToken, "LogonInvalidAuthToken"},
	{ChallengeSmsTooSoon, "ChallengeSmsTooSoon"},
	{ChallengeSmsThrottled, "ChallengeSmsThrottled"},
	{ChallengeSmsTempOutage, "ChallengeSmsTempOutage"},
	{ChallengeNoChallenge, "ChallengeNoChallenge"},
	{ChallengeNotPicked, "ChallengeNotPicked"},
	{ChallengeAlreadyPicked, "ChallengeAlreadyPicked"},
	{ChallengeInProgress, "ChallengeInProgress"},
	{ConfigFormatInvalid, "ConfigFormatInvalid"},
	{ConfigNotFound, "ConfigNotFound"},
	{ConfigRetrieveFailed, "ConfigRetrieveFailed"},
	{NetworkModuleBusy, "NetworkModuleBusy"},
	{NetworkModuleCantResolveAddress, "NetworkModuleCantResolveAddress"},
	{NetworkModuleConnectionRefused, "NetworkModuleConnectionRefused"},
	{NetworkModuleInterrupted, "NetworkModuleInterrupted"},
	{NetworkModuleConnectionAborted, "NetworkModuleConnectionAborted"},
	{NetworkModuleConnectionReset, "NetworkModuleConnectionReset"},
	{NetworkModuleBadAddress, "NetworkModuleBadAddress"},
	{NetworkModuleNotReady, "NetworkModuleNotReady"},
	{NetworkModuleAlreadyConnected, "NetworkModuleAlreadyConnected"},
	{NetworkModuleCantCreateSocket, "NetworkModuleCantCreateSocket"},
	{NetworkModuleNetworkUnreachable, "NetworkModuleNetworkUnreachable"},
	{NetworkModuleSocketPermissionDenied, "NetworkModuleSocketPermissionDenied"},
	{NetworkModuleNotInitialized, "NetworkModuleNotInitialized"},
	{NetworkModuleNoSslCertificateForPeer, "NetworkModuleNoSslCertificateForPeer"},
	{NetworkModuleNoSslCommonNameForCertificate, "NetworkModuleNoSslCommonNameForCertificate"},
	{NetworkModuleSslCommonNameDoesNotMatchRemoteEndpoint, "NetworkModuleSslCommonNameDoesNotMatchRemoteEndpoint"},
	{NetworkModuleSocketClosed, "NetworkModuleSocketClosed"},
	{NetworkModuleSslPeerIsNotRegisteredInCertbundle, "NetworkModuleSslPeerIsNotRegisteredInCertbundle"},
	{NetworkModuleSslInitializeLowFirst, "NetworkModuleSslInitializeLowFirst"},
	{NetworkModuleSslCertBundleReadError, "NetworkModuleSslCertBundleReadError"},
	{NetworkModuleNoCertBundle, "NetworkModuleNoCertBundle"},
	{NetworkModuleFailedToDownloadCertBundle, "NetworkModuleFailedToDownloadCertBundle"},
	{NetworkModuleNotReadyToRead, "NetworkModuleNotReadyToRead"},
	{NetworkModuleOpensslX509Ok, "NetworkModuleOpensslX509Ok"},
	{NetworkModuleOpensslX509UnableToGetIssuerCert, "NetworkModuleOpensslX509UnableToGetIssuerCert"},
	{NetworkModuleOpensslX509UnableToGetCrl, "NetworkModuleOpensslX509UnableToGetCrl"},
	{NetworkModuleOpensslX509UnableToDecryptCertSignature, "NetworkModuleOpensslX509UnableToDecryptCertSignature"},
	{NetworkModuleOpensslX509UnableToDecryptCrlSignature, "NetworkModuleOpensslX509UnableToDecryptCrlSignature"},
	{NetworkModuleOpensslX509UnableToDecodeIssuerPublicKey, "NetworkModuleOpensslX509UnableToDecodeIssuerPublicKey"},
	{NetworkModuleOpensslX509CertSignatureFailure, "NetworkModuleOpensslX509CertSignatureFailure"},
	{NetworkModuleOpensslX509CrlSignatureFailure, "NetworkModuleOpensslX509CrlSignatureFailure"},
	{NetworkModuleOpensslX509CertNotYetValid, "NetworkModuleOpensslX509CertNotYetValid"},
	{NetworkModuleOpensslX509CertHasExpired, "NetworkModuleOpensslX509CertHasExpired"},
	{NetworkModuleOpensslX509CrlNotYetValid, "NetworkModuleOpensslX509CrlNotYetValid"},
	{NetworkModuleOpensslX509CrlHasExpired, "NetworkModuleOpensslX509CrlHasExpired"},
	{NetworkModuleOpensslX509InCertNotBeforeField, "NetworkModuleOpensslX509InCertNotBeforeField"},
	{NetworkModuleOpensslX509InCertNotAfterField, "NetworkModuleOpensslX509InCertNotAfterField"},
	{NetworkModuleOpensslX509InCrlLastUpdateField, "NetworkModuleOpensslX509InCrlLastUpdateField"},
	{NetworkModuleOpensslX509InCrlNextUpdateField, "NetworkModuleOpensslX509InCrlNextUpdateField"},
	{NetworkModuleOpensslX509OutOfMem, "NetworkModuleOpensslX509OutOfMem"},
	{NetworkModuleOpensslX509DepthZeroSelfSignedCert, "NetworkModuleOpensslX509DepthZeroSelfSignedCert"},
	{NetworkModuleOpensslX509SelfSignedCertInChain, "NetworkModuleOpensslX509SelfSignedCertInChain"},
	{NetworkModuleOpensslX509UnableToGetIssuerCertLocally, "NetworkModuleOpensslX509UnableToGetIssuerCertLocally"},
	{NetworkModuleOpensslX509UnableToVerifyLeafSignature, "NetworkModuleOpensslX509UnableToVerifyLeafSignature"},
	{NetworkModuleOpensslX509CertChainTooLong, "NetworkModuleOpensslX509CertChainTooLong"},
	{NetworkModuleOpensslX509CertRevoked, "NetworkModuleOpensslX509CertRevoked"},
	{NetworkModuleOpensslX509InvalidCa, "NetworkModuleOpensslX509InvalidCa"},
	{NetworkModuleOpensslX509PathLengthExceeded, "NetworkModuleOpensslX509PathLengthExceeded"},
	{NetworkModuleOpensslX509InvalidPurpose, "NetworkModuleOpensslX509InvalidPurpose"},
	{NetworkModuleOpensslX509CertUntrusted, "NetworkModuleOpensslX509CertUntrusted"},
	{NetworkModuleOpensslX509CertRejected, "NetworkModuleOpensslX509CertRejected"},
	{NetworkModuleOpensslX509SubjectIssuerMismatch, "NetworkModuleOpensslX509SubjectIssuerMismatch"},
	{NetworkModuleOpensslX509AkidSkidMismatch, "NetworkModuleOpensslX509AkidSkidMismatch"},
	{NetworkModuleOpensslX509AkidIssuerSerialMismatch, "NetworkModuleOpensslX509AkidIssuerSerialMismatch"},
	{NetworkModuleOpensslX509KeyusageNoCertsign, "NetworkModuleOpensslX509KeyusageNoCertsign"},
	{NetworkModuleOpensslX509ApplicationVerification, "NetworkModuleOpensslX509ApplicationVerification"},
	{NetworkModuleSchannelCannotFindOsVersion, "NetworkModuleSchannelCannotFindOsVersion"},
	{NetworkModuleSchannelOsNotSupported, "NetworkModuleSchannelOsNotSupported"},
	{NetworkModuleSchannelLoadlibraryFail, "NetworkModuleSchannelLoadlibraryFail"},
	{NetworkModuleSchannelCannotFindInterface, "NetworkModuleSchannelCannotFindInterface"},
	{NetworkModuleSchannelInitFail, "NetworkModuleSchannelInitFail"},
	{NetworkModuleSchannelFunctionCallFail, "NetworkModuleSchannelFunctionCallFail"},
	{NetworkModuleSchannelX509UnableToGetIssuerCert, "NetworkModuleSchannelX509UnableToGetIssuerCert"},
	{NetworkModuleSchannelX509TimeInvalid, "NetworkModuleSchannelX509TimeInvalid"},
	{NetworkModuleSchannelX509SignatureInvalid, "NetworkModuleSchannelX509SignatureInvalid"},
	{NetworkModuleSchannelX509UnableToVerifyLeafSignature, "NetworkModuleSchannelX509UnableToVerifyLeafSignature"},
	{NetworkModuleSchannelX509SelfSignedLeafCertificate, "NetworkModuleSchannelX509SelfSignedLeafCertificate"},
	{NetworkModuleSchannelX509UnhandledError, "NetworkModuleSchannelX509UnhandledError"},
	{NetworkModuleSchannelX509SelfSignedCertInChain, "NetworkModuleSchannelX509SelfSignedCertInChain"},
	{WebsocketHandshake, "WebsocketHandshake"},
	{NetworkModuleDurangoUnknown, "NetworkModuleDurangoUnknown"},
	{NetworkModuleDurangoMalformedHostName, "NetworkModuleDurangoMalformedHostName"},
	{NetworkModuleDurangoInvalidConnectionResponse, "NetworkModuleDurangoInvalidConnectionResponse"},
	{NetworkModuleDurangoInvalidCaCert, "NetworkModuleDurangoInvalidCaCert"},
	{RpcWriteFailed, "RpcWriteFailed"},
	{RpcServiceNotBound, "RpcServiceNotBound"},
	{RpcTooManyRequests, "RpcTooManyRequests"},
	{RpcPeerUnknown, "RpcPeerUnknown"},
	{RpcPeerUnavailable, "RpcPeerUnavailable"},
	{RpcPeerDisconnected, "RpcPeerDisconnected"},
	{RpcRequestTimedOut, "RpcRequestTimedOut"},
	{RpcConnectionTimedOut, "RpcConnectionTimedOut"},
	{RpcMalformedResponse, "RpcMalformedResponse"},
	{RpcAccessDenied, "RpcAccessDenied"},
	{RpcInvalidService, "RpcInvalidService"},
	{RpcInvalidMethod, "RpcInvalidMethod"},
	{RpcInvalidObject, "RpcInvalidObject"},
	{RpcMalformedRequest, "RpcMalformedRequest"},
	{RpcQuotaExceeded, "RpcQuotaExceeded"},
	{RpcNotImplemented, "RpcNotImplemented"},
	{RpcServerError, "RpcServerError"},
	{RpcShutdown, "RpcShutdown"},
	{RpcDisconnect, "RpcDisconnect"},
	{RpcDisconnectIdle, "RpcDisconnectIdle"},
	{RpcProtocolError, "RpcProtocolError"},
	{RpcNotReady, "RpcNotReady"},
	{RpcForwardFailed, "RpcForwardFailed"},
	{RpcEncryptionFailed, "RpcEncryptionFailed"},
	{RpcInvalidAddress, "RpcInvalidAddress"},
	{RpcMethodDisabled, "RpcMethodDisabled"},
	{RpcShardNotFound, "RpcShardNotFound"},
	{RpcInvalidConnectionId, "RpcInvalidConnectionId"},
	{RpcNotConnected, "RpcNotConnected"},
	{RpcInvalidConnectionState, "RpcInvalidConnectionState"},
	{RpcServiceAlreadyRegistered, "RpcServiceAlreadyRegistered"},
	{PresenceInvalidFieldId, "PresenceInvalidFieldId"},
	{PresenceNoValidSubscribers, "PresenceNoValidSubscribers"},
	{PresenceAlreadySubscribed, "PresenceAlreadySubscribed"},
	{PresenceConsumerNotFound, "PresenceConsumerNotFound"},
	{PresenceConsumerIsNull, "PresenceConsumerIsNull"},
	{PresenceTemporaryOutage, "PresenceTemporaryOutage"},
	{PresenceTooManySubscriptions, "PresenceTooManySubscriptions"},
	{PresenceSubscriptionCancelled, "PresenceSubscriptionCancelled"},
	{PresenceRichPresenceParseError, "PresenceRichPresenceParseError"},
	{PresenceRichPresenceXmlError, "PresenceRichPresenceXmlError"},
	{PresenceRichPresenceLoadError, "PresenceRichPresenceLoadError"},
	{FriendsTooManySentInvitations, "FriendsTooManySentInvitations"},
	{FriendsTooManyReceivedInvitations, "FriendsTooManyReceivedInvitations"},
	{FriendsFriendshipAlreadyExists, "FriendsFriendshipAlreadyExists"},
	{FriendsFriendshipDoesNotExist, "FriendsFriendshipDoesNotExist"},
	{FriendsInvitationAlreadyExists, "FriendsInvitationAlreadyExists"},
	{FriendsInvalidInvitation, "FriendsInvalidInvitation"},
	{FriendsAlreadySubscribed, "FriendsAlreadySubscribed"},
	{FriendsAccountBlocked, "FriendsAccountBlocked"},
	{FriendsNotSubscribed, "FriendsNotSubscribed"},
	{FriendsInvalidRoleId, "FriendsInvalidRoleId"},
	{FriendsDisabledRoleId, "FriendsDisabledRoleId"},
	{FriendsNoteMaxSizeExceeded, "FriendsNoteMaxSizeExceeded"},
	{FriendsUpdateFriendStateFailed, "FriendsUpdateFriendStateFailed"},
	{FriendsInviteeAtMaxFriends, "FriendsInviteeAtMaxFriends"},
	{FriendsInviterAtMaxFriends, "FriendsInviterAtMaxFriends"},
	{PlatformStorageFileWriteDenied, "PlatformStorageFileWriteDenied"},
	{WhisperUndeliverable, "WhisperUndeliverable"},
	{WhisperMaxSizeExceeded, "WhisperMaxSizeExceeded"},
	{UserManagerAlreadyBlocked, "UserManagerAlreadyBlocked"},
	{UserManagerNotBlocked, "UserManagerNotBlocked"},
	{UserManagerCannotBlockSelf, "UserManagerCannotBlockSelf"},
	{UserManagerAlreadyRegistered, "UserManagerAlreadyRegistered"},
	{UserManagerNotRegistered, "UserManagerNotRegistered"},
	{UserManagerTooManyBlockedEntities, "UserManagerTooManyBlockedEntities"},
	{UserManagerTooManyIds, "UserManagerTooManyIds"},
	{UserManagerBlockRecordUnavailable, "UserManagerBlockRecordUnavailable"},
	{UserManagerBlockEntityFailed, "UserManagerBlockEntityFailed"},
	{UserManagerUnblockEntityFailed, "UserManagerUnblockEntityFailed"},
	{UserManagerCannotBlockFriend, "UserManagerCannotBlockFriend"},
	{SocialNetworkDbException, "SocialNetworkDbException"},
	{SocialNetworkDenialFromProvider, "SocialNetworkDenialFromProvider"},
	{SocialNetworkInvalidSnsId, "SocialNetworkInvalidSnsId"},
	{SocialNetworkCantSendToProvider, "SocialNetworkCantSendToProvider"},
	{SocialNetworkExCommFailed, "SocialNetworkExCommFailed"},
	{SocialNetworkDisabled, "SocialNetworkDisabled"},
	{SocialNetworkMissingRequestParam, "SocialNetworkMissingRequestParam"},
	{SocialNetworkUnsupportedOauthVersion, "SocialNetworkUnsupportedOauthVersion"},
	{ChannelFull, "ChannelFull"},
	{ChannelNoChannel, "ChannelNoChannel"},
	{ChannelNotMember, "ChannelNotMember"},
	{ChannelAlreadyMember, "ChannelAlreadyMember"},
	{ChannelNoSuchMember, "ChannelNoSuchMember"},
	{ChannelInvalidChannelId, "ChannelInvalidChannelId"},
	{ChannelNoSuchInvitation, "ChannelNoSuchInvitation"},
	{ChannelTooManyInvitations, "ChannelTooManyInvitations"},
	{ChannelInvitationAlreadyExists, "ChannelInvitationAlreadyExists"},
	{ChannelInvalidChannelSize, "ChannelInvalidChannelSize"},
	{ChannelInvalidRoleId, "ChannelInvalidRoleId"},
	{ChannelRoleNotAssignable, "ChannelRoleNotAssignable"},
	{ChannelInsufficientPrivileges, "ChannelInsufficientPrivileges"},
	{ChannelInsufficientPrivacyLevel, "ChannelInsufficientPrivacyLevel"},
	{ChannelInvalidPrivacyLevel, "ChannelInvalidPrivacyLevel"},
	{ChannelTooManyChannelsJoined, "ChannelTooManyChannelsJoined"},
	{ChannelInvitationAlreadySubscribed, "ChannelInvitationAlreadySubscribed"},
	{ChannelInvalidChannelDelegate, "ChannelInvalidChannelDelegate"},
	{ChannelSlotAlreadyReserved, "ChannelSlotAlreadyReserved"},
	{ChannelSlotNotReserved, "ChannelSlotNotReserved"},
	{ChannelNoReservedSlotsAvailable, "ChannelNoReservedSlotsAvailable"},
	{ChannelInvalidRoleSet, "ChannelInvalidRoleSet"},
	{ChannelRequireFriendValidation, "ChannelRequireFriendValidation"},
	{ChannelMemberOffline, "ChannelMemberOffline"},
	{ChannelReceivedTooManyInvitations, "ChannelReceivedTooManyInvitations"},
	{ChannelInvitationInvalidGameAccountSelected, "ChannelInvitationInvalidGameAccountSelected"},
	{ChannelUnreachable, "ChannelUnreachable"},
	{ChannelInvitationNotSubscribed, "ChannelInvitationNotSubscribed"},
	{ChannelInvalidMessageSize, "ChannelInvalidMessageSize"},
	{ChannelMaxMessageSizeExceeded, "ChannelMaxMessageSizeExceeded"},
	{ChannelConfigNotFound, "ChannelConfigNotFound"},
	{ChannelInvalidChannelType, "ChannelInvalidChannelType"},
	{LocalStorageFileOpenError, "LocalStorageFileOpenError"},
	{LocalStorageFileCreateError, "LocalStorageFileCreateError"},
	{LocalStorageFileReadError, "LocalStorageFileReadError"},
	{LocalStorageFileWriteError, "LocalStorageFileWriteError"},
	{LocalStorageFileDeleteError, "LocalStorageFileDeleteError"},
	{LocalStorageFileCopyError, "LocalStorageFileCopyError"},
	{LocalStorageFileDecompressError, "LocalStorageFileDecompressError"},
	{LocalStorageFileHashMismatch, "LocalStorageFileHashMismatch"},
	{LocalStorageFileUsageMismatch, "LocalStorageFileUsageMismatch"},
	{LocalStorageDatabaseInitError, "LocalStorageDatabaseInitError"},
	{LocalStorageDatabaseNeedsRebuild, "LocalStorageDatabaseNeedsRebuild"},
	{LocalStorageDatabaseInsertError, "LocalStorageDatabaseInsertError"},
	{LocalStorageDatabaseLookupError, "LocalStorageDatabaseLookupError"},
	{LocalStorageDatabaseUpdateError, "LocalStorageDatabaseUpdateError"},
	{LocalStorageDatabaseDeleteError, "LocalStorageDatabaseDeleteError"},
	{LocalStorageDatabaseShrinkError, "LocalStorageDatabaseShrinkError"},
	{LocalStorageCacheCrawlError, "LocalStorageCacheCrawlError"},
	{LocalStorageDatabaseIndexTriggerError, "LocalStorageDatabaseIndexTriggerError"},
	{LocalStorageDatabaseRebuildInProgress, "LocalStorageDatabaseRebuildInProgress"},
	{LocalStorageOkButNotInCache, "LocalStorageOkButNotInCache"},
	{LocalStorageDatabaseRebuildInterrupted, "LocalStorageDatabaseRebuildInterrupted"},
	{LocalStorageDatabaseNotInitialized, "LocalStorageDatabaseNotInitialized"},
	{LocalStorageDirectoryCreateError, "LocalStorageDirectoryCreateError"},
	{LocalStorageFilekeyNotFound, "LocalStorageFilekeyNotFound"},
	{LocalStorageNotAvailableOnServer, "LocalStorageNotAvailableOnServer"},
	{RegistryCreateKeyError, "RegistryCreateKeyError"},
	{RegistryOpenKeyError, "RegistryOpenKeyError"},
	{RegistryReadError, "RegistryReadError"},
	{RegistryWriteError, "RegistryWriteError"},
	{RegistryTypeError, "RegistryTypeError"},
	{RegistryDeleteError, "RegistryDeleteError"},
	{RegistryEncryptError, "RegistryEncryptError"},
	{RegistryDecryptError, "RegistryDecryptError"},
	{RegistryKeySizeError, "RegistryKeySizeError"},
	{RegistryValueSizeError, "RegistryValueSizeError"},
	{RegistryNotFound, "RegistryNotFound"},
	{RegistryMalformedString, "RegistryMalformedString"},
	{InterfaceAlreadyConnected, "InterfaceAlreadyConnected"},
	{InterfaceNotReady, "InterfaceNotReady"},
	{InterfaceOptionKeyTooLarge, "InterfaceOptionKeyTooLarge"},
	{InterfaceOptionValueTooLarge, "InterfaceOptionValueTooLarge"},
	{InterfaceOptionKeyInvalidUtf8String, "InterfaceOptionKeyInvalidUtf8String"},
	{InterfaceOptionValueInvalidUtf8String, "InterfaceOptionValueInvalidUtf8String"},
	{HttpCouldntResolve, "HttpCouldntResolve"},
	{HttpCouldntConnect, "HttpCouldntConnect"},
	{HttpTimeout, "HttpTimeout"},
	{HttpFailed, "HttpFailed"},
	{HttpMalformedUrl, "HttpMalformedUrl"},
	{HttpDownloadAborted, "HttpDownloadAborted"},
	{HttpCouldntWriteFile, "HttpCouldntWriteFile"},
	{HttpTooManyRedirects, "HttpTooManyRedirects"},
	{HttpCouldntOpenFile, "HttpCouldntOpenFile"},
	{HttpCouldntCreateFile, "HttpCouldntCreateFile"},
	{HttpCouldntReadFile, "HttpCouldntReadFile"},
	{HttpCouldntRenameFile, "HttpCouldntRenameFile"},
	{HttpCouldntCreateDirectory, "HttpCouldntCreateDirectory"},
	{HttpCurlIsNotReady, "HttpCurlIsNotReady"},
	{HttpCancelled, "HttpCancelled"},
	{HttpFileNotFound, "HttpFileNotFound"},
	{AccountMissingConfig, "AccountMissingConfig"},
	{AccountDataNotFound, "AccountDataNotFound"},
	{AccountAlreadySubscribed, "AccountAlreadySubscribed"},
	{AccountNotSubscribed, "AccountNotSubscribed"},
	{AccountFailedToParseTimezoneData, "AccountFailedToParseTimezoneData"},
	{AccountLoadFailed, "AccountLoadFailed"},
	{AccountLoadCancelled, "AccountLoadCancelled"},
	{AccountDatabaseInvalidateFailed, "AccountDatabaseInvalidateFailed"},
	{AccountCacheInvalidateFailed, "AccountCacheInvalidateFailed"},
	{AccountSubscriptionPending, "AccountSubscriptionPending"},
	{AccountUnknownRegion, "AccountUnknownRegion"},
	{AccountDataFailedToParse, "AccountDataFailedToParse"},
	{AccountUnderage, "AccountUnderage"},
	{AccountIdentityCheckPending, "AccountIdentityCheckPending"},
	{AccountIdentityUnverified, "AccountIdentityUnverified"},
	{DatabaseBindingCountMismatch, "DatabaseBindingCountMismatch"},
	{DatabaseBindingParseFail, "DatabaseBindingParseFail"},
	{DatabaseResultsetColumnsMismatch, "DatabaseResultsetColumnsMismatch"},
	{DatabaseDeadlock, "DatabaseDeadlock"},
	{DatabaseDuplicateKey, "DatabaseDuplicateKey"},
	{DatabaseCannotConnect, "DatabaseCannotConnect"},
	{DatabaseStatementFailed, "DatabaseStatementFailed"},
	{DatabaseTransactionNotStarted, "DatabaseTransactionNotStarted"},
	{DatabaseTransactionNotEnded, "DatabaseTransactionNotEnded"},
	{DatabaseTransactionLeak, "DatabaseTransactionLeak"},
	{DatabaseTransactionStateBad, "DatabaseTransactionStateBad"},
	{DatabaseServerGone, "DatabaseServerGone"},
	{DatabaseQueryTimeout, "DatabaseQueryTimeout"},
	{DatabaseBindingNotNullable, "DatabaseBindingNotNullable"},
	{DatabaseBindingInvalidInteger, "DatabaseBindingInvalidInteger"},
	{DatabaseBindingInvalidFloat, "DatabaseBindingInvalidFloat"},
	{DatabaseBindingInvalidTemporal, "DatabaseBindingInvalidTemporal"},
	{DatabaseBindingInvalidProtobuf, "DatabaseBindingInvalidProtobuf"},
	{PartyInvalidPartyId, "PartyInvalidPartyId"},
	{PartyAlreadyInParty, "PartyAlreadyInParty"},
	{PartyNotInParty, "PartyNotInParty"},
	{PartyInvitationUndeliverable, "PartyInvitationUndeliverable"},
	{PartyInvitationAlreadyExists, "PartyInvitationAlreadyExists"},
	{PartyTooManyPartyInvitations, "PartyTooManyPartyInvitations"},
	{PartyTooManyReceivedInvitations, "PartyTooManyReceivedInvitations"},
	{PartyNoSuchType, "PartyNoSuchType"},
	{GamesNoSuchFactory, "GamesNoSuchFactory"},
	{GamesNoSuchGame, "GamesNoSuchGame"},
	{GamesNoSuchRequest, "GamesNoSuchRequest"},
	{GamesNoSuchPartyMember, "GamesNoSuchPartyMember"},
	{ResourcesOffline, "ResourcesOffline"},
	{GameServerCreateGameRefused, "GameServerCreateGameRefused"},
	{GameServerAddPlayersRefused, "GameServerAddPlayersRefused"},
	{GameServerRemovePlayersRefused, "GameServerRemovePlayersRefused"},
	{GameServerFinishGameRefused, "GameServerFinishGameRefused"},
	{GameServerNoSuchGame, "GameServerNoSuchGame"},
	{GameServerNoSuchPlayer, "GameServerNoSuchPlayer"},
	{GameServerCreateGameRefusedTransient, "GameServerCreateGameRefusedTransient"},
	{GameServerAddPlayersRefusedTransient, "GameServerAddPlayersRefusedTransient"},
	{GameServerRemovePlayersRefusedTransient, "GameServerRemovePlayersRefusedTransient"},
	{GameServerFinishGameRefusedTransient, "GameServerFinishGameRefusedTransient"},
	{GameServerCreateGameRefusedBusy, "GameServerCreateGameRefusedBusy"},
	{GameServerAddPlayersRefusedBusy, "GameServerAddPlayersRefusedBusy"},
	{GameServerRemovePlayersRefusedBusy, "GameServerRemovePlayersRefusedBusy"},
	{GameServerFinishGameRefusedBusy, "GameServerFinishGameRefusedBusy"},
	{GameMasterInvalidFactory, "GameMasterInvalidFactory"},
	{GameMasterInvalidGame, "GameMasterInvalidGame"},
	{GameMasterGameFull, "GameMasterGameFull"},
	{GameMasterRegisterFailed, "GameMasterRegisterFailed"},
	{GameMasterNoGameServer, "GameMasterNoGameServer"},
	{GameMasterNoUtilityServer, "GameMasterNoUtilityServer"},
	{GameMasterNoGameVersion, "GameMasterNoGameVersion"},
	{GameMasterGameJoinFailed, "GameMasterGameJoinFailed"},
	{GameMasterAlreadyRegistered, "GameMasterAlreadyRegistered"},
	{GameMasterNoFactory, "GameMasterNoFactory"},
	{GameMasterMultipleGameVersions, "GameMasterMultipleGameVersions"},
	{GameMasterInvalidPlayer, "GameMasterInvalidPlayer"},
	{GameMasterInvalidGameRequest, "GameMasterInvalidGameRequest"},
	{GameMasterInsufficientPrivileges, "GameMasterInsufficientPrivileges"},
	{GameMasterAlreadyInGame, "GameMasterAlreadyInGame"},
	{GameMasterInvalidGameServerResponse, "GameMasterInvalidGameServerResponse"},
	{GameMasterGameAccountLookupFailed, "GameMasterGameAccountLookupFailed"},
	{GameMasterGameEntryCancelled, "GameMasterGameEntryCancelled"},
	{GameMasterGameEntryAbortedClientDropped, "GameMasterGameEntryAbortedClientDropped"},
	{GameMasterGameEntryAbortedByService, "GameMasterGameEntryAbortedByService"},
	{GameMasterNoAvailableCapacity, "GameMasterNoAvailableCapacity"},
	{GameMasterInvalidTeamId, "GameMasterInvalidTeamId"},
	{GameMasterCreationInProgress, "GameMasterCreationInProgress"},
	{NotificationInvalidClientId, "NotificationInvalidClientId"},
	{NotificationDuplicateName, "NotificationDuplicateName"},
	{NotificationNameNotFound, "NotificationNameNotFound"},
	{NotificationInvalidServer, "NotificationInvalidServer"},
	{NotificationQuotaExceeded, "NotificationQuotaExceeded"},
	{NotificationInvalidNotificationType, "NotificationInvalidNotificationType"},
	{NotificationUndeliverable, "NotificationUndeliverable"},
	{NotificationUndeliverableTemporary, "NotificationUndeliverableTemporary"},
	{AchievementsNothingToUpdate, "AchievementsNothingToUpdate"},
	{AchievementsInvalidParams, "AchievementsInvalidParams"},
	{AchievementsNotRegistered, "AchievementsNotRegistered"},
	{AchievementsNotReady, "AchievementsNotReady"},
	{AchievementsFailedToParseStaticData, "AchievementsFailedToParseStaticData"},
	{AchievementsUnknownId, "AchievementsUnknownId"},
	{AchievementsMissingSnapshot, "AchievementsMissingSnapshot"},
	{AchievementsAlreadyRegistered, "AchievementsAlreadyRegistered"},
	{AchievementsTooManyRegistrations, "AchievementsTooManyRegistrations"},
	{AchievementsAlreadyInProgress, "AchievementsAlreadyInProgress"},
	{AchievementsTemporaryOutage, "AchievementsTemporaryOutage"},
	{AchievementsInvalidProgramid, "AchievementsInvalidProgramid"},
	{AchievementsMissingRecord, "AchievementsMissingRecord"},
	{AchievementsRegistrationPending, "AchievementsRegistrationPending"},
	{AchievementsEntityIdNotFound, "AchievementsEntityIdNotFound"},
	{AchievementsAchievementIdNotFound, "AchievementsAchievementIdNotFound"},
	{AchievementsCriteriaIdNotFound, "AchievementsCriteriaIdNotFound"},
	{AchievementsStaticDataMismatch, "AchievementsStaticDataMismatch"},
	{AchievementsWrongThread, "AchievementsWrongThread"},
	{AchievementsCallbackIsNull, "AchievementsCallbackIsNull"},
	{AchievementsAutoRegisterPending, "AchievementsAutoRegisterPending"},
	{AchievementsNotInitialized, "AchievementsNotInitialized"},
	{AchievementsAchievementIdAlreadyExists, "AchievementsAchievementIdAlreadyExists"},
	{AchievementsFailedToDownloadStaticData, "AchievementsFailedToDownloadStaticData"},
	{AchievementsStaticDataNotFound, "AchievementsStaticDataNotFound"},
	{GameUtilityServerVariableRequestRefused, "GameUtilityServerVariableRequestRefused"},
	{GameUtilityServerWrongNumberOfVariablesReturned, "GameUtilityServerWrongNumberOfVariablesReturned"},
	{GameUtilityServerClientRequestRefused, "GameUtilityServerClientRequestRefused"},
	{GameUtilityServerPresenceChannelCreatedRefused, "GameUtilityServerPresenceChannelCreatedRefused"},
	{GameUtilityServerVariableRequestRefusedTransient, "GameUtilityServerVariableRequestRefusedTransient"},
	{GameUtilityServerClientRequestRefusedTransient, "GameUtilityServerClientRequestRefusedTransient"},
	{GameUtilityServerPresenceChannelCreatedRefusedTransient, "GameUtilityServerPresenceChannelCreatedRefusedTransient"},
	{GameUtilityServerServerRequestRefusedTransient, "GameUtilityServerServerRequestRefusedTransient"},
	{GameUtilityServerVariableRequestRefusedBusy, "GameUtilityServerVariableRequestRefusedBusy"},
	{GameUtilityServerClientRequestRefusedBusy, "GameUtilityServerClientRequestRefusedBusy"},
	{GameUtilityServerPresenceChannelCreatedRefusedBusy, "GameUtilityServerPresenceChannelCreatedRefusedBusy"},
	{GameUtilityServerServerRequestRefusedBusy, "GameUtilityServerServerRequestRefusedBusy"},
	{GameUtilityServerNoServer, "GameUtilityServerNoServer"},
	{IdentityInsufficientData, "IdentityInsufficientData"},
	{IdentityTooManyResults, "IdentityTooManyResults"},
	{IdentityBadId, "IdentityBadId"},
	{IdentityNoAccountBlob, "IdentityNoAccountBlob"},
	{RiskChallengeAction, "RiskChallengeAction"},
	{RiskDelayAction, "RiskDelayAction"},
	{RiskThrottleAction, "RiskThrottleAction"},
	{RiskAccountLocked, "RiskAccountLocked"},
	{RiskCsDenied, "RiskCsDenied"},
	{RiskDisconnectAccount, "RiskDisconnectAccount"},
	{RiskCheckSkipped, "RiskCheckSkipped"},
	{ReportUnavailable, "ReportUnavailable"},
	{ReportTooLarge, "ReportTooLarge"},
	{ReportUnknownType, "ReportUnknownType"},
	{ReportAttributeInvalid, "ReportAttributeInvalid"},
	{ReportAttributeQuotaExceeded, "ReportAttributeQuotaExceeded"},
	{ReportUnconfirmed, "ReportUnconfirmed"},
	{ReportNotConnected, "ReportNotConnected"},
	{ReportRejected, "ReportRejected"},
	{ReportTooManyRequests, "ReportTooManyRequests"},
	{AccountAlreadyRegisterd, "AccountAlreadyRegisterd"},
	{AccountNotRegistered, "AccountNotRegistered"},
	{AccountRegistrationPending, "AccountRegistrationPending"},
	{MemcachedClientNoError, "MemcachedClientNoError"},
	{MemcachedClientKeyNotFound, "MemcachedClientKeyNotFound"},
	{MemcachedKeyExists, "MemcachedKeyExists"},
	{MemcachedValueToLarge, "MemcachedValueToLarge"},
	{MemcachedInvalidArgs, "MemcachedInvalidArgs"},
	{MemcachedItemNotStored, "MemcachedItemNotStored"},
	{MemcachedNonNumericValue, "MemcachedNonNumericValue"},
	{MemcachedWrongServer, "MemcachedWrongServer"},
	{MemcachedAuthenticationError, "MemcachedAuthenticationError"},
	{MemcachedAuthenticationContinue, "MemcachedAuthenticationContinue"},
	{MemcachedUnknownCommand, "MemcachedUnknownCommand"},
	{MemcachedOutOfMemory, "MemcachedOutOfMemory"},
	{MemcachedNotSupported, "MemcachedNotSupported"},
	{MemcachedInternalError, "MemcachedInternalError"},
	{MemcachedTemporaryFailure, "MemcachedTemporaryFailure"},
	{MemcachedClientAlreadyConnected, "MemcachedClientAlreadyConnected"},
	{MemcachedClientBadConfig, "MemcachedClientBadConfig"},
	{MemcachedClientNotConnected, "MemcachedClientNotConnected"},
	{MemcachedClientTimeout, "MemcachedClientTimeout"},
	{MemcachedClientAborted, "MemcachedClientAborted"},
	{UtilServerFailedToSerialize, "UtilServerFailedToSerialize"},
	{UtilServerDisconnectedFromBattlenet, "UtilServerDisconnectedFromBattlenet"},
	{UtilServerTimedOut, "UtilServerTimedOut"},
	{UtilServerNoMeteringData, "UtilServerNoMeteringData"},
	{UtilServerFailPermissionCheck, "UtilServerFailPermissionCheck"},
	{UtilServerUnknownRealm, "UtilServerUnknownRealm"},
	{UtilServerMissingSessionKey, "UtilServerMissingSessionKey"},
	{UtilServerMissingVirtualRealm, "UtilServerMissingVirtualRealm"},
	{UtilServerInvalidSessionKey, "UtilServerInvalidSessionKey"},
	{UtilServerMissingRealmList, "UtilServerMissingRealmList"},
	{UtilServerInvalidIdentityArgs, "UtilServerInvalidIdentityArgs"},
	{UtilServerSessionObjectMissing, "UtilServerSessionObjectMissing"},
	{UtilServerInvalidBnetSession, "UtilServerInvalidBnetSession"},
	{UtilServerInvalidVirtualRealm, "UtilServerInvalidVirtualRealm"},
	{UtilServerInvalidClientAddress, "UtilServerInvalidClientAddress"},
	{UtilServerFailedToSerializeResponse, "UtilServerFailedToSerializeResponse"},
	{UtilServerUnknownRequest, "UtilServerUnknownRequest"},
	{UtilServerUnableToGenerateJoinTicket, "UtilServerUnableToGenerateJoinTicket"},
	{UtilServerUnableToGenerateRealmListTicket, "UtilServerUnableToGenerateRealmListTicket"},
	{UtilServerAccountDenied, "UtilServerAccountDenied"},
	{UtilServerInvalidWowAccount, "UtilServerInvalidWowAccount"},
	{UtilServerUnableToStoreSession, "UtilServerUnableToStoreSession"},
	{UtilServerSessionAlreadyCreated, "UtilServerSessionAlreadyCreated"},
	{UserServerFailedToSerialize, "UserServerFailedToSerialize"},
	{UserServerDisconnectedFromUtil, "UserServerDisconnectedFromUtil"},
	{UserServerSessionDuplicate, "UserServerSessionDuplicate"},
	{UserServerFailedToDisableBilling, "UserServerFailedToDisableBilling"},
	{UserServerPlayerDisconnected, "UserServerPlayerDisconnected"},
	{UserServerFailedToParseAccountState, "UserServerFailedToParseAccountState"},
	{UserServerAccountLoadCancelled, "UserServerAccountLoadCancelled"},
	{UserServerBadPlatform, "UserServerBadPlatform"},
	{UserServerBadVirtualRealm, "UserServerBadVirtualRealm"},
	{UserServerLocaleRestricted, "UserServerLocaleRestricted"},
	{UserServerMissingPropass, "UserServerMissingPropass"},
	{UserServerBadWowAccount, "UserServerBadWowAccount"},
	{UserServerBadBnetAccount, "UserServerBadBnetAccount"},
	{UserServerFailedToParseGameAccountState, "UserServerFailedToParseGameAccountState"},
	{UserServerFailedToParseGameTimeRemaining, "UserServerFailedToParseGameTimeRemaining"},
	{UserServerFailedToParseGameSessionInfo, "UserServerFailedToParseGameSessionInfo"},
	{UserServerAccountStatePoorlyFormed, "UserServerAccountStatePoorlyFormed"},
	{UserServerGameAccountStatePoorlyFormed, "UserServerGameAccountStatePoorlyFormed"},
	{UserServerGameTimeRemainingPoorlyFormed, "UserServerGameTimeRemainingPoorlyFormed"},
	{UserServerGameSessionInfoPoorlyFormed, "UserServerGameSessionInfoPoorlyFormed"},
	{UserServerBadSessionTrackerState, "UserServerBadSessionTrackerState"},
	{UserServerFailedToParseCaisInfo, "UserServerFailedToParseCaisInfo"},
	{UserServerGameSessionDisconnected, "UserServerGameSessionDisconnected"},
	{UserServerVersionMismatch, "UserServerVersionMismatch"},
	{UserServerAccountSuspended, "UserServerAccountSuspended"},
	{UserServerNotPermittedOnRealm, "UserServerNotPermittedOnRealm"},
	{UserServerLoginFailedConnect, "UserServerLoginFailedConnect"},
	{WowServicesTimedOut, "WowServicesTimedOut"},
	{WowServicesInvalidRealmListTicket, "WowServicesInvalidRealmListTicket"},
	{WowServicesInvalidJoinTicket, "WowServicesInvalidJoinTicket"},
	{WowServicesInvalidServerAddresses, "WowServicesInvalidServerAddresses"},
	{WowServicesInvalidSecretBlob, "WowServicesInvalidSecretBlob"},
	{WowServicesNoRealmJoinIpFound, "WowServicesNoRealmJoinIpFound"},
	{WowServicesDeniedRealmListTicket, "WowServicesDeniedRealmListTicket"},
	{WowServicesMissingGameAccount, "WowServicesMissingGameAccount"},
	{WowServicesLogonInvalidAuthToken, "WowServicesLogonInvalidAuthToken"},
	{WowServicesNoAvailableRealms, "WowServicesNoAvailableRealms"},
	{WowServicesFailedToParseDispatch, "WowServicesFailedToParseDispatch"},
	{WowServicesMissingMeteringFile, "WowServicesMissingMeteringFile"},
	{WowServicesLoginInvalidContentType, "WowServicesLoginInvalidContentType"},
	{WowServicesLoginUnableToDecode, "WowServicesLoginUnableToDecode"},
	{WowServicesLoginPostError, "WowServicesLoginPostError"},
	{WowServicesAuthenticatorParseFailed, "WowServicesAuthenticatorParseFailed"},
	{WowServicesLegalParseFailed, "WowServicesLegalParseFailed"},
	{WowServicesLoginAuthenticationParseFailed, "WowServicesLoginAuthenticationParseFailed"},
	{WowSerivcesUserMustAcceptLegal, "WowSerivcesUserMustAcceptLegal"},
	{WowServicesDisconnected, "WowServicesDisconnected"},
	{WowServicesNoHandlerForDispatch, "WowServicesNoHandlerForDispatch"},
	{WowServicesPreDispatchHandlerFailed, "WowServicesPreDispatchHandlerFailed"},
	{WowServicesCriticalStreamingError, "WowServicesCriticalStreamingError"},
	{WowServicesWorldLoadError, "WowServicesWorldLoadError"},
	{WowServicesLoginFailed, "WowServicesLoginFailed"},
	{WowServicesLoginFailedOnChallenge, "WowServicesLoginFailedOnChallenge"},
	{WowServicesNoPrepaidTime, "WowServicesNoPrepaidTime"},
	{WowServicesSubscriptionExpired, "WowServicesSubscriptionExpired"},
	{WowServicesCantConnect, "WowServicesCantConnect"},
}
